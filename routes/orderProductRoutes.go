package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func OrderProductRoutes(server *gin.Engine, controller *controllers.OrderProductController) {
	orderProducts := server.Group("/order-products")
	{
		orderProducts.POST("", controller.Create)
		orderProducts.GET("", controller.FindAll)
		orderProducts.GET("/order/:orderId", controller.FindByOrder)
		orderProducts.GET("/:id", controller.FindOne)
		orderProducts.PATCH("/:id", controller.Update)
		orderProducts.DELETE("/:id", controller.Remove)
	}
}
