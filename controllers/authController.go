package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type AuthController struct {
	authService services.IAuthService
	userService services.IUserService
}

func NewAuthController(authService services.IAuthService, userService services.IUserService) *AuthController {
	return &AuthController{authService: authService, userService: userService}
}

func (c *AuthController) Login(ctx *gin.Context) {
	var credentials models.LoginData
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		sendBindError(ctx, err)
		return
	}

	user, err := c.authService.ValidateUser(credentials.Email, credentials.Password)
	if err != nil {
		sendError(ctx, err)
		return
	}

	result, err := c.authService.Login(user)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, result)
}

// Me returns the profile of the authenticated user.
func (c *AuthController) Me(ctx *gin.Context) {
	claims, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"statusCode":    http.StatusUnauthorized,
			"statusMessage": "Failed",
			"error":         "user not found in context",
		})
		return
	}

	sub, ok := claims.(jwt.MapClaims)["sub"].(float64)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"statusCode":    http.StatusUnauthorized,
			"statusMessage": "Failed",
			"error":         "invalid token subject",
		})
		return
	}

	user, err := c.userService.FindOne(uint(sub))
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, user)
}
