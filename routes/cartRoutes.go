package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
	"github.com/yasirnabil534/hotel-management-backend/middlewares"
)

func CartRoutes(server *gin.Engine, controller *controllers.CartController, jwtSecret string) {
	carts := server.Group("/carts", middlewares.Authenticate(jwtSecret))
	{
		carts.GET("/user/:userId", controller.GetCart)
		carts.POST("/item/:id", controller.AddItem)
		carts.PUT("/items/:id", controller.UpdateItemQuantity)
		carts.DELETE("/items/:id", controller.RemoveItem)
		carts.POST("/checkout/:id", controller.Checkout)
		carts.DELETE("/clear/:id", controller.ClearCart)
	}
}
