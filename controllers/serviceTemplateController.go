package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type ServiceTemplateController struct {
	templateService services.IServiceTemplateService
}

func NewServiceTemplateController(templateService services.IServiceTemplateService) *ServiceTemplateController {
	return &ServiceTemplateController{templateService: templateService}
}

func (c *ServiceTemplateController) Create(ctx *gin.Context) {
	var input services.CreateServiceTemplateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	template, err := c.templateService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, template)
}

func (c *ServiceTemplateController) FindAll(ctx *gin.Context) {
	templates, err := c.templateService.FindAll(parseListQuery(ctx))
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, templates)
}

func (c *ServiceTemplateController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	template, err := c.templateService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, template)
}

func (c *ServiceTemplateController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateServiceTemplateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	template, err := c.templateService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, template)
}

func (c *ServiceTemplateController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.templateService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Service template deleted"})
}
