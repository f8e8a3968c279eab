package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret, userType string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  1,
		"type": userType,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func setupProtectedRouter(adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	handlers := []gin.HandlerFunc{Authenticate(testSecret)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	server.GET("/protected", handlers...)
	return server
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	server := setupProtectedRouter(false)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticate_BadSignature(t *testing.T) {
	server := setupProtectedRouter(false)

	request := httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", "CUSTOMER"))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	server := setupProtectedRouter(false)

	request := httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, "CUSTOMER"))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	server := setupProtectedRouter(true)

	request := httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, "CUSTOMER"))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	server := setupProtectedRouter(true)

	request := httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, "ADMIN"))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
