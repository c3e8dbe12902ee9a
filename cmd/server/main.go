// Package main is the entry point for the cargo pricing service.
//
//	@title						Cargo Pricing API
//	@version					1.0.0
//	@description				An air-cargo route segmentation and sector-rate pricing service. Uploads raw cargo rows, derives journey legs from booked flights, and prices them against the sector and transit rate registries.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/adityaldip/cargo-pricing/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/adityaldip/cargo-pricing/docs"

	// Application layers
	pricinghttp "github.com/adityaldip/cargo-pricing/internal/adapter/http"
	"github.com/adityaldip/cargo-pricing/internal/adapter/http/middleware"
	"github.com/adityaldip/cargo-pricing/internal/adapter/repository"
	"github.com/adityaldip/cargo-pricing/internal/config"
	"github.com/adityaldip/cargo-pricing/internal/infrastructure/logger"
	"github.com/adityaldip/cargo-pricing/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "cargo-pricing",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("dsn", cfg.Database.DSN).
		Msg("Configuration loaded")

	// Open the registry database and migrate the schema
	store, err := repository.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := store.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Wire the pricing pipeline
	pricingUseCase := usecase.NewPricingUseCase(store, store)
	handler := pricinghttp.NewPricingHandler(pricingUseCase)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Middleware: request ID, request logging, panic recovery
	middleware.Setup(e, log.Logger)

	// Routes
	pricinghttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
