package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func OrderRoutes(server *gin.Engine, controller *controllers.OrderController) {
	orders := server.Group("/orders")
	{
		orders.POST("", controller.Create)
		orders.GET("", controller.FindAll)
		orders.GET("/user/:userId", controller.FindByUser)
		orders.GET("/hotel/:hotelId", controller.FindByHotel)
		orders.GET("/:id", controller.FindOne)
		orders.PUT("/:id", controller.Update)
		orders.DELETE("/:id", controller.Remove)
	}
}
