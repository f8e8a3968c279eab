package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yasirnabil534/hotel-management-backend/config"
	"github.com/yasirnabil534/hotel-management-backend/controllers"
	"github.com/yasirnabil534/hotel-management-backend/initializers"
	"github.com/yasirnabil534/hotel-management-backend/middlewares"
	"github.com/yasirnabil534/hotel-management-backend/repository"
	"github.com/yasirnabil534/hotel-management-backend/routes"
	"github.com/yasirnabil534/hotel-management-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	if err := initializers.SyncDatabase(db); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	templateRepo := repository.NewServiceTemplateRepository(db)
	systemServiceRepo := repository.NewSystemServiceRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderProductRepo := repository.NewOrderProductRepository(db)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userService, cfg.JWT.Secret, cfg.JWT.AccessTTLDays)
	hotelService := services.NewHotelService(hotelRepo)
	serviceService := services.NewServiceService(serviceRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	templateService := services.NewServiceTemplateService(templateRepo)
	systemServiceService := services.NewSystemServiceService(systemServiceRepo, templateRepo)
	orderService := services.NewOrderService(orderRepo)
	orderProductService := services.NewOrderProductService(orderProductRepo, orderService)
	cartService := services.NewCartService(cartRepo, productRepo, orderService)

	server := gin.Default()
	server.Use(middlewares.RequestID())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server, controllers.NewDefaultController())
	routes.AuthRoutes(server, controllers.NewAuthController(authService, userService), cfg.JWT.Secret)
	routes.UserRoutes(server, controllers.NewUserController(userService))
	routes.HotelRoutes(server, controllers.NewHotelController(hotelService))
	routes.ServiceRoutes(server, controllers.NewServiceController(serviceService))
	routes.CategoryRoutes(server, controllers.NewCategoryController(categoryService))
	routes.ProductRoutes(server, controllers.NewProductController(productService, cfg.AWS.Bucket))
	routes.ServiceTemplateRoutes(server, controllers.NewServiceTemplateController(templateService), cfg.JWT.Secret)
	routes.SystemServiceRoutes(server, controllers.NewSystemServiceController(systemServiceService))
	routes.CartRoutes(server, controllers.NewCartController(cartService), cfg.JWT.Secret)
	routes.OrderRoutes(server, controllers.NewOrderController(orderService))
	routes.OrderProductRoutes(server, controllers.NewOrderProductController(orderProductService))

	if err := server.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
