package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type OrderController struct {
	orderService services.IOrderService
}

func NewOrderController(orderService services.IOrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func (c *OrderController) Create(ctx *gin.Context) {
	var input services.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	order, err := c.orderService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, order)
}

// FindAll supports ?page&limit&sortBy&sortOrder&search plus the order
// filters hidden, hotelId and customerId.
func (c *OrderController) FindAll(ctx *gin.Context) {
	query := repository.OrderListQuery{
		ListQuery:  parseListQuery(ctx),
		Hidden:     queryBool(ctx, "hidden"),
		HotelID:    queryUint(ctx, "hotelId"),
		CustomerID: queryUint(ctx, "customerId"),
	}

	orders, err := c.orderService.FindAll(query)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, orders)
}

func (c *OrderController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	order, err := c.orderService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, order)
}

func (c *OrderController) FindByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	orders, err := c.orderService.FindByUser(userID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, orders)
}

func (c *OrderController) FindByHotel(ctx *gin.Context) {
	hotelID, ok := parseIDParam(ctx, "hotelId")
	if !ok {
		return
	}

	orders, err := c.orderService.FindByHotel(hotelID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, orders)
}

func (c *OrderController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	order, err := c.orderService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, order)
}

func (c *OrderController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.orderService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Order deleted"})
}
