package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type HotelController struct {
	hotelService services.IHotelService
}

func NewHotelController(hotelService services.IHotelService) *HotelController {
	return &HotelController{hotelService: hotelService}
}

func (c *HotelController) Create(ctx *gin.Context) {
	var input services.CreateHotelInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	hotel, err := c.hotelService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, hotel)
}

func (c *HotelController) FindAll(ctx *gin.Context) {
	hotels, err := c.hotelService.FindAll(parseListQuery(ctx))
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, hotels)
}

func (c *HotelController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	hotel, err := c.hotelService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, hotel)
}

func (c *HotelController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateHotelInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	hotel, err := c.hotelService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, hotel)
}

func (c *HotelController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.hotelService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Hotel deleted"})
}
