package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yasirnabil534/hotel-management-backend/models"
	"github.com/yasirnabil534/hotel-management-backend/utils"
	"gorm.io/gorm"
)

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCartByUser(userID uint) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) GetCartByID(cartID uint) (*models.Cart, error) {
	args := m.Called(cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(cartID, productID uint, quantity int) (*models.CartItem, error) {
	args := m.Called(cartID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error) {
	args := m.Called(itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveItem(itemID uint) error {
	args := m.Called(itemID)
	return args.Error(0)
}

func (m *MockCartService) ClearCart(cartID uint) (*models.Cart, error) {
	args := m.Called(cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) Checkout(cartID uint) (*models.Order, error) {
	args := m.Called(cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func setupCartRouter(svc *MockCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCartController(svc)
	server := gin.New()
	server.GET("/carts/user/:userId", controller.GetCart)
	server.POST("/carts/item/:id", controller.AddItem)
	server.PUT("/carts/items/:id", controller.UpdateItemQuantity)
	server.DELETE("/carts/items/:id", controller.RemoveItem)
	server.POST("/carts/checkout/:id", controller.Checkout)
	server.DELETE("/carts/clear/:id", controller.ClearCart)
	return server
}

func TestCartController_GetCart(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	cart := &models.Cart{Model: gorm.Model{ID: 5}, UserID: 1}
	svc.On("GetCartByUser", uint(1)).Return(cart, nil)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest("GET", "/carts/user/1", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Success", body["statusMessage"])
	assert.Equal(t, float64(http.StatusOK), body["statusCode"])
}

func TestCartController_GetCart_BadUserID(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest("GET", "/carts/user/abc", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	svc.AssertNotCalled(t, "GetCartByUser", mock.Anything)
}

func TestCartController_AddItem(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	item := &models.CartItem{Model: gorm.Model{ID: 9}, CartID: 5, ProductID: 10, Quantity: 2, Price: 25.5}
	svc.On("AddItem", uint(5), uint(10), 2).Return(item, nil)

	payload, _ := json.Marshal(gin.H{"productId": 10, "quantity": 2})
	request := httptest.NewRequest("POST", "/carts/item/5", bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	svc.AssertExpectations(t)
}

func TestCartController_AddItem_RejectsMissingQuantity(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	payload, _ := json.Marshal(gin.H{"productId": 10})
	request := httptest.NewRequest("POST", "/carts/item/5", bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	svc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartController_Checkout_EmptyCartConflicts(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	svc.On("Checkout", uint(5)).Return(nil, utils.ErrCartEmpty)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest("POST", "/carts/checkout/5", nil))

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Cart is empty", body["error"])
}

func TestCartController_Checkout_Created(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	order := &models.Order{Model: gorm.Model{ID: 77}, UserID: 1, HotelID: 42, Status: models.OrderStatusPending, Total: 250.5}
	svc.On("Checkout", uint(5)).Return(order, nil)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest("POST", "/carts/checkout/5", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	svc.AssertExpectations(t)
}

func TestCartController_Checkout_UnknownCart(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	svc.On("Checkout", uint(99)).Return(nil, utils.NewNotFound("Cart", 99))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest("POST", "/carts/checkout/99", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Cart with ID 99 not found", body["error"])
}

func TestCartController_UpdateItemQuantity_ZeroRemoves(t *testing.T) {
	svc := new(MockCartService)
	server := setupCartRouter(svc)

	svc.On("UpdateItemQuantity", uint(9), 0).Return(nil, nil)

	payload, _ := json.Marshal(gin.H{"quantity": 0})
	request := httptest.NewRequest("PUT", "/carts/items/9", bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	svc.AssertExpectations(t)
}
