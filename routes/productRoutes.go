package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func ProductRoutes(server *gin.Engine, controller *controllers.ProductController) {
	products := server.Group("/products")
	{
		products.POST("", controller.Create)
		products.POST("/images", controller.UploadImages)
		products.GET("", controller.FindAll)
		products.GET("/service/:serviceId", controller.FindByService)
		products.GET("/hotel/:hotelId", controller.FindByHotel)
		products.GET("/:id", controller.FindOne)
		products.PUT("/:id", controller.Update)
		products.DELETE("/:id", controller.Remove)
	}
}
