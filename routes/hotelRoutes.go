package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func HotelRoutes(server *gin.Engine, controller *controllers.HotelController) {
	hotels := server.Group("/hotels")
	{
		hotels.POST("", controller.Create)
		hotels.GET("", controller.FindAll)
		hotels.GET("/:id", controller.FindOne)
		hotels.PUT("/:id", controller.Update)
		hotels.DELETE("/:id", controller.Remove)
	}
}
