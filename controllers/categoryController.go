package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

type CategoryController struct {
	categoryService services.ICategoryService
}

func NewCategoryController(categoryService services.ICategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (c *CategoryController) Create(ctx *gin.Context) {
	var input services.CreateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	category, err := c.categoryService.Create(input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusCreated, category)
}

func (c *CategoryController) FindAll(ctx *gin.Context) {
	categories, err := c.categoryService.FindAll(parseListQuery(ctx))
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, categories)
}

func (c *CategoryController) FindOne(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categoryService.FindOne(id)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, category)
}

func (c *CategoryController) FindByHotel(ctx *gin.Context) {
	hotelID, ok := parseIDParam(ctx, "hotelId")
	if !ok {
		return
	}

	categories, err := c.categoryService.FindByHotel(hotelID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, categories)
}

func (c *CategoryController) FindByService(ctx *gin.Context) {
	serviceID, ok := parseIDParam(ctx, "serviceId")
	if !ok {
		return
	}

	categories, err := c.categoryService.FindByService(serviceID)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, categories)
}

func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input services.UpdateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendBindError(ctx, err)
		return
	}

	category, err := c.categoryService.Update(id, input)
	if err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, category)
}

func (c *CategoryController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categoryService.Remove(id); err != nil {
		sendError(ctx, err)
		return
	}
	sendSuccess(ctx, http.StatusOK, gin.H{"message": "Category deleted"})
}
