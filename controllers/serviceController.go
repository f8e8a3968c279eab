package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type ServiceController struct {
	serviceService services.IServiceService
}

func NewServiceController(serviceService services.IServiceService) *ServiceController {
	return &ServiceController{serviceService: serviceService}
}

func (c *ServiceController) Create(ctx *gin.Context) {
	var input services.CreateServiceInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	service, err := c.serviceService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, service)
}

func (c *ServiceController) FindAll(ctx *gin.Context) {
	servicesList, err := c.serviceService.FindAll(parseListQuery(ctx))
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, servicesList)
}

func (c *ServiceController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	service, err := c.serviceService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, service)
}

func (c *ServiceController) FindByHotel(ctx *gin.Context) {
	hotelID, ok := parseIDParam(ctx, "hotelId")
	if !ok {
		return
	}

	servicesList, err := c.serviceService.FindByHotel(hotelID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, servicesList)
}

func (c *ServiceController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateServiceInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	service, err := c.serviceService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, service)
}

func (c *ServiceController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.serviceService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Service deleted"})
}
