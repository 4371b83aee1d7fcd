package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/configs"
	v1 "github.com/tamagotcho/tamagotcho-be/internal/api/v1"
	"github.com/tamagotcho/tamagotcho-be/internal/api/v1/handlers"
	"github.com/tamagotcho/tamagotcho-be/internal/cache"
	"github.com/tamagotcho/tamagotcho-be/internal/database"
	applogger "github.com/tamagotcho/tamagotcho-be/internal/logger"
	appmiddleware "github.com/tamagotcho/tamagotcho-be/internal/middleware"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
	"github.com/tamagotcho/tamagotcho-be/internal/service"

	_ "github.com/tamagotcho/tamagotcho-be/docs" // generated Swagger docs
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Tamagotcho API
// @version 1.0
// @description API backend for the Tamagotcho virtual pet application.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3001
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description "Type 'Bearer YOUR_JWT_TOKEN' into the value field."

func main() {
	// Load .env before anything that reads environment variables.
	configs.LoadConfig()

	logCloser := applogger.SetupLogger()
	if logCloser != nil {
		defer func() {
			zlog.Info().Msg("Closing log file...")
			if err := logCloser.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "[ERROR] Failed to close log file: %v\n", err)
			}
		}()
	}
	zlog.Info().Msg("Configuration loaded")

	dbPool, err := database.NewPgxPool()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Could not connect to the database")
	}
	defer dbPool.Close()
	zlog.Info().Msg("Database connection pool established")

	// Redis is optional. A nil client disables gallery caching.
	redisClient := cache.NewRedisClient()
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Repository layer.
	userRepo := repository.NewUserRepository(dbPool)
	monsterRepo := repository.NewMonsterRepository(dbPool)
	walletRepo := repository.NewWalletRepository(dbPool)
	userQuestsRepo := repository.NewUserQuestsRepository(dbPool)
	ownedItemRepo := repository.NewOwnedItemRepository(dbPool)
	paymentRepo := repository.NewPaymentRepository(dbPool)
	zlog.Info().Msg("Repositories initialized")

	// Service layer.
	checkoutProvider := service.NewStripeProvider(os.Getenv("STRIPE_SECRET_KEY"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	authService := service.NewAuthService(dbPool, userRepo, walletRepo)
	questService := service.NewQuestService(dbPool, userQuestsRepo, walletRepo)
	monsterService := service.NewMonsterService(monsterRepo, walletRepo, questService)
	shopService := service.NewShopService(dbPool, ownedItemRepo, walletRepo, monsterRepo, questService)
	paymentService := service.NewPaymentService(dbPool, paymentRepo, walletRepo, checkoutProvider)
	galleryService := service.NewGalleryService(monsterRepo, redisClient)
	zlog.Info().Msg("Services initialized")

	// Handler layer.
	authHandler := handlers.NewAuthHandler(authService)
	monsterHandler := handlers.NewMonsterHandler(monsterService)
	questHandler := handlers.NewQuestHandler(questService)
	walletHandler := handlers.NewWalletHandler(walletRepo)
	shopHandler := handlers.NewShopHandler(shopService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	zlog.Info().Msg("Handlers initialized")

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	zlog.Info().Msg("Fiber app initialized")

	appmiddleware.SetupGlobalMiddleware(app)

	// Swagger UI at /swagger/index.html
	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	zlog.Info().Msg("Swagger UI endpoint registered at /swagger/*")

	v1.SetupRoutes(
		app,
		authHandler,
		monsterHandler,
		questHandler,
		walletHandler,
		shopHandler,
		paymentHandler,
		galleryHandler,
	)
	zlog.Info().Msg("API v1 routes registered")

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "3000"
	}

	zlog.Info().Msgf("Server is starting on port %s...", appPort)
	startErr := app.Listen(fmt.Sprintf(":%s", appPort))
	if startErr != nil {
		zlog.Fatal().Err(startErr).Msg("Failed to start server")
	}
}
