package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postl-admin-backend/internal/api/middleware"
	"postl-admin-backend/internal/api/routes"
	"postl-admin-backend/internal/app"
	"postl-admin-backend/internal/config"
	"postl-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "postl-admin-backend/docs" // This is needed for swag
)

//	@title			PosTL Admin Backend API
//	@version		1.0
//	@description	Backend API for the PosTL admin panel: tenant (shop) records, owner accounts, contract status and the dashboard.

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	application, err := app.New(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize application: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(routes.Dependencies{
		Config:        cfg,
		TenantService: application.TenantService,
		Store:         application.Tenants,
	})

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           middleware.RateLimit(cfg, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}
	if err := application.Close(); err != nil {
		logrus.Error("Failed to close application: ", err)
	}
	logrus.Info("Server exited")
}
