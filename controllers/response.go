package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/yasirnabil534/hotel-management-backend/services"
	"github.com/yasirnabil534/hotel-management-backend/utils"
)

// sendSuccess writes the uniform success envelope.
func sendSuccess(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, gin.H{
		"statusCode":    status,
		"statusMessage": "Success",
		"data":          data,
	})
}

// sendError maps the error kind to a transport status and writes the uniform
// failure envelope. Controllers are the only place this translation happens.
func sendError(ctx *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}
	ctx.JSON(status, gin.H{
		"statusCode":    status,
		"statusMessage": "Failed",
		"error":         err.Error(),
	})
}

func sendBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"statusCode":    http.StatusBadRequest,
		"statusMessage": "Failed",
		"error":         err.Error(),
	})
}

func statusFromError(err error) int {
	switch {
	case utils.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrCartEmpty):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam reads a numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"statusCode":    http.StatusBadRequest,
			"statusMessage": "Failed",
			"error":         "invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(id), true
}
