package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DefaultController struct{}

func NewDefaultController() *DefaultController {
	return &DefaultController{}
}

func (c *DefaultController) GetHome(ctx *gin.Context) {
	sendSuccess(ctx, http.StatusOK, gin.H{
		"message": "Hotel Management API",
		"health":  "ok",
	})
}
