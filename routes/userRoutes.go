package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
)

func UserRoutes(server *gin.Engine, controller *controllers.UserController) {
	users := server.Group("/users")
	{
		users.POST("", controller.Create)
		users.GET("", controller.FindAll)
		users.GET("/:id", controller.FindOne)
		users.PUT("/:id", controller.Update)
		users.DELETE("/:id", controller.Remove)
	}
}
