package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_converter_app/internal/alerting"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/SscSPs/currency_converter_app/internal/handlers"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/SscSPs/currency_converter_app/internal/providers/exchangerateapi"
	"github.com/SscSPs/currency_converter_app/internal/repositories/database/sqlitekv"
	"github.com/SscSPs/currency_converter_app/internal/repositories/kvbacked"
	"github.com/SscSPs/currency_converter_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Currency Converter API
// @version 1.0
// @description Backend for the currency converter: rate table, conversion workflow, history and statistics.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewSQLiteDB(cfg.KVDBPath)
	if err != nil {
		logger.Error("Failed to open local store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := database.CloseDB(db); cerr != nil {
			logger.Error("Error closing local store", slog.String("error", cerr.Error()))
		}
	}()

	kvStore := sqlitekv.NewStore(db)
	if err := kvStore.EnsureSchema(ctx); err != nil {
		logger.Error("Failed to prepare local store schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Local store ready", slog.String("path", cfg.KVDBPath))

	alerter := alerting.New(logger)
	rateProvider := exchangerateapi.New(cfg.RatesAPIURL, cfg.RatesHTTPTimeout, logger)

	container := services.NewContainer(ctx, services.ContainerDeps{
		Repos:        kvbacked.NewRepositoryProvider(kvStore),
		RateProvider: rateProvider,
		Alerter:      alerter,
		AlertReader:  alerter,
		BaseCurrency: cfg.RatesBaseCurrency,
		Logger:       logger,
	})

	// Initial rate fetch. A failure raises a user alert and leaves the
	// converter form disabled until a later refresh succeeds.
	go func() {
		if err := container.Rates.Refresh(context.Background()); err != nil {
			logger.Error("Initial rate fetch failed", slog.String("error", err.Error()))
		}
	}()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
