// Package main is the entry point for the flight offer search service.
//
//	@title						Flight Offer Search API
//	@version					1.0.0
//	@description				A flight offer search service that queries the Amadeus API and returns filtered, sorted results with facets, price distribution, and value ranking.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyfare/flight-offer-search/issues
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
	_ "github.com/skyfare/flight-offer-search/docs"

	offerhttp "github.com/skyfare/flight-offer-search/internal/adapter/http"
	"github.com/skyfare/flight-offer-search/internal/adapter/http/middleware"
	"github.com/skyfare/flight-offer-search/internal/adapter/provider/amadeus"
	"github.com/skyfare/flight-offer-search/internal/config"
	"github.com/skyfare/flight-offer-search/internal/infrastructure/logger"
	"github.com/skyfare/flight-offer-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	// Initialize the global logger from config
	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-offer-search",
	})
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the provider, use cases, and handler onto the router.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := amadeus.NewClient(amadeus.ClientConfig{
		BaseURL:   cfg.Amadeus.BaseURL,
		APIKey:    cfg.Amadeus.APIKey,
		APISecret: cfg.Amadeus.APISecret,
		Timeout:   cfg.Amadeus.Timeout,
		RateLimit: cfg.Amadeus.RateLimit,
		RateBurst: cfg.Amadeus.RateBurst,
	}, log)
	provider := amadeus.NewAdapter(client, log)

	offerUseCase := usecase.NewOfferSearchUseCase(provider, &usecase.Config{
		SearchTimeout: cfg.Search.Timeout,
	})
	locationUseCase := usecase.NewLocationSearchUseCase(provider, cfg.Search.DebounceInterval)

	handler := offerhttp.NewOfferHandler(offerUseCase, locationUseCase)
	offerhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
