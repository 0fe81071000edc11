package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/handler"
	mid "github.com/RafaelEmery/rafood-api/internal/middleware"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/RafaelEmery/rafood-api/internal/service"
	"github.com/RafaelEmery/rafood-api/pkg/config"
	"github.com/RafaelEmery/rafood-api/pkg/database"
	"github.com/RafaelEmery/rafood-api/pkg/logger"
	"github.com/RafaelEmery/rafood-api/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting "+appConfig.App.Name, appConfig.LogFields()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig, promclient.DefaultRegisterer)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Change events
	publisher, err := events.NewPublisher(appConfig.Events)
	if err != nil {
		log.Fatal("Failed to initialize event publisher", zap.Error(err))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("Failed to close event publisher", zap.Error(err))
		}
	}()

	// Initialize database
	db, err := database.Open(appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connection established", zap.String("driver", appConfig.DB.Driver))

	if appConfig.DB.AutoMigrate {
		if err := database.Migrate(db, model.All()...); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
		log.Info("Database migrated")
	}

	services := service.New(repository.NewStores(db), publisher)

	// Initialize Echo instance
	e := echo.New()
	handler.Configure(e)

	// Middleware
	e.Use(mid.RequestID(appConfig.Log.CorrelationHeader))
	e.Use(mid.Metrics())
	e.Use(logger.Middleware(appConfig.Log.CorrelationHeader))
	e.Use(middleware.Recover())

	// Routes
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handler.Register(e, appConfig.App.V1Prefix, services)

	// Start server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Starting server", zap.String("address", appConfig.App.Address()))
		if err := e.Start(appConfig.App.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
