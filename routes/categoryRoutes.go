package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func CategoryRoutes(server *gin.Engine, controller *controllers.CategoryController) {
	categories := server.Group("/categories")
	{
		categories.POST("", controller.Create)
		categories.GET("", controller.FindAll)
		categories.GET("/hotel/:hotelId", controller.FindByHotel)
		categories.GET("/service/:serviceId", controller.FindByService)
		categories.GET("/:id", controller.FindOne)
		categories.PUT("/:id", controller.Update)
		categories.DELETE("/:id", controller.Remove)
	}
}
