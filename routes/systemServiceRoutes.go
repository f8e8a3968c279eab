package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func SystemServiceRoutes(server *gin.Engine, controller *controllers.SystemServiceController) {
	systemServices := server.Group("/system-services")
	{
		systemServices.POST("", controller.Create)
		systemServices.GET("", controller.FindAll)
		systemServices.GET("/hotel/:hotelId", controller.FindByHotel)
		systemServices.GET("/:id", controller.FindOne)
		systemServices.PUT("/:id", controller.Update)
		systemServices.DELETE("/:id", controller.Remove)
	}
}
