package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type SystemServiceController struct {
	systemServiceService services.ISystemServiceService
}

func NewSystemServiceController(systemServiceService services.ISystemServiceService) *SystemServiceController {
	return &SystemServiceController{systemServiceService: systemServiceService}
}

func (c *SystemServiceController) Create(ctx *gin.Context) {
	var input services.CreateSystemServiceInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	systemService, err := c.systemServiceService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, systemService)
}

func (c *SystemServiceController) FindAll(ctx *gin.Context) {
	systemServices, err := c.systemServiceService.FindAll(parseListQuery(ctx))
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, systemServices)
}

func (c *SystemServiceController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	systemService, err := c.systemServiceService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, systemService)
}

func (c *SystemServiceController) FindByHotel(ctx *gin.Context) {
	hotelID, ok := parseIDParam(ctx, "hotelId")
	if !ok {
		return
	}

	systemServices, err := c.systemServiceService.FindByHotel(hotelID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, systemServices)
}

func (c *SystemServiceController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateSystemServiceInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	systemService, err := c.systemServiceService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, systemService)
}

func (c *SystemServiceController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.systemServiceService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "System service deleted"})
}
