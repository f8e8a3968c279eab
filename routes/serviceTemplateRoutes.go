package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
	"github.com/yasirnabil534/hotel-management-backend/middlewares"
)

// Template mutations are admin-only; reads stay open so hotels can browse
// the catalog.
func ServiceTemplateRoutes(server *gin.Engine, controller *controllers.ServiceTemplateController, jwtSecret string) {
	templates := server.Group("/service-templates")
	{
		templates.GET("", controller.FindAll)
		templates.GET("/:id", controller.FindOne)

		admin := templates.Group("", middlewares.Authenticate(jwtSecret), middlewares.RequireAdmin())
		{
			admin.POST("", controller.Create)
			admin.PUT("/:id", controller.Update)
			admin.DELETE("/:id", controller.Remove)
		}
	}
}
