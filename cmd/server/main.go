package main

import (
	"fmt"
	"log"
	"net/http"

	"ridelink/internal/config"
	"ridelink/internal/handlers"
	"ridelink/internal/middleware"
	mongorepo "ridelink/internal/repositories/mongodb"
	"ridelink/internal/services"
	"ridelink/pkg/cache"
	"ridelink/pkg/database"
	"ridelink/pkg/email"
	"ridelink/pkg/logger"
	"ridelink/pkg/maps"
	"ridelink/pkg/sms"
	"ridelink/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Warnf("Redis unavailable, ride caching disabled: %v", err)
		redisCache = nil
	}

	routeProvider, err := newRouteProvider(cfg)
	if err != nil {
		appLogger.Warnf("Routing provider unavailable, estimates will use the straight-line fallback: %v", err)
	}

	smsProvider := sms.SMSProvider(nil)
	if cfg.Notification.Twilio.AccountSID != "" {
		smsProvider = sms.NewTwilioProvider(
			cfg.Notification.Twilio.AccountSID,
			cfg.Notification.Twilio.AuthToken,
			cfg.Notification.Twilio.FromNumber,
		)
	}

	emailProvider := email.NewEmailJSProvider(
		cfg.Notification.Email.ServiceID,
		cfg.Notification.Email.TemplateID,
		cfg.Notification.Email.PublicKey,
		cfg.Notification.Email.PrivateKey,
		cfg.Notification.Timeout,
	)

	// Repositories
	rideRepo := mongorepo.NewRideRepository(db.Database, redisCache)

	// Services
	routeService := services.NewRouteService(routeProvider, appLogger)
	pricingService := services.NewPricingService(routeService, cfg.Pricing)
	areaService := services.NewAreaService(nil)
	progressService := services.NewBookingProgressService()
	notificationService := services.NewNotificationService(smsProvider, emailProvider, cfg.Notification.Email, appLogger)
	rideService := services.NewRideService(rideRepo, pricingService, areaService, notificationService, appLogger)
	paymentService := services.NewPaymentService(rideRepo, cfg.Payment)

	// Handlers
	estimateHandler := handlers.NewEstimateHandler(routeService, pricingService, areaService)
	progressHandler := handlers.NewBookingProgressHandler(progressService)
	rideHandler := handlers.NewRideHandler(rideService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupEstimateRoutes(v1, estimateHandler)
		routes.SetupBookingProgressRoutes(v1, progressHandler)
		routes.SetupRideRoutes(v1, cfg.Security.JWTSecret, rideHandler, paymentHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}

func newRouteProvider(cfg *config.Config) (maps.RouteProvider, error) {
	switch cfg.Routing.Provider {
	case "google":
		provider, err := maps.NewGoogleProvider(cfg.Routing.GoogleMaps.APIKey)
		if err != nil {
			// Return a nil interface, not a typed nil pointer.
			return nil, err
		}
		return provider, nil
	default:
		if cfg.Routing.OpenRoute.APIKey == "" {
			return nil, fmt.Errorf("OPENROUTE_API_KEY is not set")
		}
		return maps.NewOpenRouteProvider(cfg.Routing.OpenRoute.APIKey, cfg.Routing.Timeout), nil
	}
}
