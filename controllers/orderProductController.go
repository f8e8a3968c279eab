package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type OrderProductController struct {
	orderProductService services.IOrderProductService
}

func NewOrderProductController(orderProductService services.IOrderProductService) *OrderProductController {
	return &OrderProductController{orderProductService: orderProductService}
}

func (c *OrderProductController) Create(ctx *gin.Context) {
	var input services.CreateOrderProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	orderProduct, err := c.orderProductService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, orderProduct)
}

func (c *OrderProductController) FindAll(ctx *gin.Context) {
	orderProducts, err := c.orderProductService.FindAll()
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, orderProducts)
}

func (c *OrderProductController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	orderProduct, err := c.orderProductService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, orderProduct)
}

func (c *OrderProductController) FindByOrder(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "orderId")
	if !ok {
		return
	}

	orderProducts, err := c.orderProductService.FindByOrder(orderID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, orderProducts)
}

func (c *OrderProductController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateOrderProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	orderProduct, err := c.orderProductService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, orderProduct)
}

func (c *OrderProductController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.orderProductService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Order product deleted"})
}
