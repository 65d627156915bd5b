package config

import (
	"FoodBridge/internal/api/handlers"
	"FoodBridge/internal/api/routes"
	"FoodBridge/internal/middleware"
	"FoodBridge/internal/utils"
	"FoodBridge/internal/utils/storage"
	"FoodBridge/pkg/delivery"
	"FoodBridge/pkg/directions"
	"FoodBridge/pkg/donation"
	"FoodBridge/pkg/inventory"
	"FoodBridge/pkg/jwt"
	"FoodBridge/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	directionsClient := directions.NewGoogleClient(
		utils.GetConfig("DIRECTIONS_API_URL"),
		utils.GetConfig("DIRECTIONS_API_KEY"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	deliveryRepository := delivery.NewDeliveryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	donationService := donation.NewDonationService(donationRepository, s3)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	deliveryService := delivery.NewDeliveryService(
		deliveryRepository,
		donationRepository,
		userRepository,
		inventoryService,
		directionsClient,
		delivery.NewMailNotifier(),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	routeHandler := handlers.NewRouteHandler(deliveryService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		DonationHandler:  donationHandler,
		RouteHandler:     routeHandler,
		InventoryHandler: inventoryHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
