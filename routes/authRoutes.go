package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
	"github.com/yasirnabil534/hotel-management-backend/middlewares"
)

func AuthRoutes(server *gin.Engine, controller *controllers.AuthController, jwtSecret string) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controller.Login)
		auth.GET("/me", middlewares.Authenticate(jwtSecret), controller.Me)
	}
}
