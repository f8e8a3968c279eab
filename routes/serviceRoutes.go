package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func ServiceRoutes(server *gin.Engine, controller *controllers.ServiceController) {
	services := server.Group("/services")
	{
		services.POST("", controller.Create)
		services.GET("", controller.FindAll)
		services.GET("/hotel/:hotelId", controller.FindByHotel)
		services.GET("/:id", controller.FindOne)
		services.PUT("/:id", controller.Update)
		services.DELETE("/:id", controller.Remove)
	}
}
