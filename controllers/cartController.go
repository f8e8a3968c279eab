package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type CartController struct {
	cartService services.ICartService
}

func NewCartController(cartService services.ICartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (c *CartController) GetCart(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	cart, err := c.cartService.GetCartByUser(userID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, cart)
}

func (c *CartController) AddItem(ctx *gin.Context) {
	cartID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.AddCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	item, err := c.cartService.AddItem(cartID, input.ProductID, input.Quantity)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, item)
}

func (c *CartController) UpdateItemQuantity(ctx *gin.Context) {
	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	item, err := c.cartService.UpdateItemQuantity(itemID, *input.Quantity)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, item)
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.cartService.RemoveItem(itemID); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
}

func (c *CartController) Checkout(ctx *gin.Context) {
	cartID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	order, err := c.cartService.Checkout(cartID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, order)
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	cartID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	cart, err := c.cartService.ClearCart(cartID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, cart)
}
