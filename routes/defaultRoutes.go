package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func DefaultRoutes(server *gin.Engine, controller *controllers.DefaultController) {
	server.GET("/", controller.GetHome)
}
