package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appmetrics "eventScout/app/echo-server/metrics"
	"eventScout/app/echo-server/router"
	"eventScout/business/discovery"
	"eventScout/business/social"
	userService "eventScout/business/user"
	"eventScout/internal/middleware"
	psqlRepo "eventScout/internal/repository/postgres"
	redisRepo "eventScout/internal/repository/redis"
	"eventScout/internal/repository/ticketmaster"
	"eventScout/internal/rest"
	"eventScout/pkg/config"
	"eventScout/pkg/database"
	redisdb "eventScout/pkg/database/redis"
	"eventScout/pkg/logger"
	"eventScout/pkg/metrics"
	"eventScout/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting EventScout", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	ticketmasterRepo := ticketmaster.NewTicketmasterRepository(
		ticketmaster.TicketmasterConfig{
			BaseURL: cfg.Ticketmaster.BaseURL,
			APIKey:  cfg.Ticketmaster.APIKey,
			Timeout: time.Duration(cfg.Ticketmaster.TimeoutSeconds) * time.Second,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	profileRepo := psqlRepo.NewProfileRepository(db)
	userEventRepo := psqlRepo.NewUserEventRepository(db)
	friendshipRepo := psqlRepo.NewFriendshipRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, profileRepo, tokenRepo, validate)
	discoverySvc := discovery.NewDiscoveryService(ticketmasterRepo, profileRepo, discovery.DefaultConfig())
	socialSvc := social.NewSocialService(userEventRepo, friendshipRepo)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	discoveryHandler := rest.NewDiscoveryHandler(discoverySvc, socialSvc)
	socialHandler := rest.NewSocialHandler(socialSvc)

	// Init metrics
	metrics.Init()
	appmetrics.Init()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupDiscoveryRoutes(api, discoveryHandler, authRequired)
	router.SetupSocialRoutes(api, socialHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
