package main

import (
	"os"

	"storefront_service/config"
	"storefront_service/internal/delivery"
	"storefront_service/internal/repository"
	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Storefront Service...")

	gin.SetMode(cfg.GinMode)

	// --- Dependency Injection ---
	// The store is the single owner of all mutable state; everything else is
	// constructed around it.
	store := repository.NewMemoryStore(logger)
	logger.Info("In-memory store initialized with seed catalog.")

	catalogUseCase := usecase.NewCatalogUseCase(store, logger)
	cartUseCase := usecase.NewCartUseCase(store, logger)
	orderUseCase := usecase.NewOrderUseCase(store, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(catalogUseCase, logger)
	cartHandler := delivery.NewCartHandler(cartUseCase, logger)
	orderHandler := delivery.NewOrderHandler(orderUseCase, logger)
	adminHandler := delivery.NewAdminHandler(orderUseCase, logger)
	logger.Info("Handlers initialized.")

	delivery.RegisterCheckoutValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	})

	api := router.Group("/api")
	productHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)
	logger.Info("API routes registered.")

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
