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

	"presscraft/internal/api/config"
	delivery "presscraft/internal/api/delivery/http"
	_ "presscraft/internal/api/docs"
	"presscraft/internal/api/repository"
	"presscraft/internal/api/service"
	"presscraft/internal/reportmeta"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"
	"presscraft/pkg/newssearch"
	"presscraft/pkg/postgres"
	"presscraft/pkg/redis"
	"presscraft/pkg/textextract"
	"presscraft/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

const serviceName = "api-service"

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the PressCraft API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name))
	metrics.Init(serviceName, cfg.App.Version, cfg.App.Env)
	loc := utils.LoadLocation(cfg.App.TimeZone)

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db.DB)
	subscriptionRepo := repository.NewSubscriptionRepository(db.DB)
	runRepo := repository.NewClippingRunRepository(db.DB)

	aiRepo, err := repository.NewAIRepository(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize AI repository", logger.ErrorField(err))
	}
	if aiRepo == nil {
		appLogger.Warn("No AI provider configured, fact sheets use heuristic parsing only")
	}

	var ocr textextract.OCREngine
	if cfg.Gemini.OCREnabled {
		geminiRepo, err := repository.NewGeminiAIRepository(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini OCR", logger.ErrorField(err))
		}
		ocr = geminiRepo
	}
	extractor := textextract.New(ocr)
	metaExtractor := reportmeta.NewExtractor(reportmeta.WithLocation(loc))

	searcher, err := newssearch.New(cfg.NewsSearch, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize news search", logger.ErrorField(err))
	}
	scraper := repository.NewPageScraper(cfg, appLogger)

	// Initialize services
	draftSvc := service.NewDraftService(eventRepo, appLogger)
	analysisSvc := service.NewAnalysisService(aiRepo, scraper, extractor, appLogger)
	timelineSvc := service.NewTimelineService(searcher, cfg.Timeline.CacheTTL, loc, appLogger)
	eventSvc := service.NewEventService(eventRepo, extractor, metaExtractor, loc, appLogger)
	reportSvc := service.NewReportService(eventRepo, extractor, metaExtractor, loc, appLogger)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, runRepo, appLogger)

	// Start scheduler service
	if cfg.Scheduler.Enabled {
		pollingInterval, err := time.ParseDuration(cfg.Scheduler.PollingInterval)
		if err != nil {
			appLogger.Fatal("Invalid polling interval", logger.ErrorField(err))
		}
		schedulerSvc := service.NewSchedulerService(subscriptionRepo, runRepo, redisClient.Client, appLogger, pollingInterval, cfg.Redis.StreamMaxLen)
		go schedulerSvc.Start(ctx)
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(delivery.RequestContextMiddleware(appLogger))
	e.Use(delivery.PrometheusMiddleware(serviceName))

	maxUploadBytes := int64(cfg.Upload.MaxFileSizeMB) << 20

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")
	delivery.NewDraftHandler(draftSvc, appLogger).RegisterRoutes(apiV1)
	delivery.NewAnalysisHandler(analysisSvc, maxUploadBytes, appLogger).RegisterRoutes(apiV1.Group("/analysis"))
	delivery.NewNewsHandler(timelineSvc, appLogger).RegisterRoutes(apiV1.Group("/news"))
	delivery.NewEventHandler(eventSvc, maxUploadBytes, appLogger).RegisterRoutes(apiV1.Group("/events"))
	delivery.NewReportHandler(reportSvc, maxUploadBytes, cfg.Upload.MaxFiles, appLogger).RegisterRoutes(apiV1.Group("/reports"))
	delivery.NewSubscriptionHandler(subscriptionSvc, appLogger).RegisterRoutes(apiV1.Group("/subscriptions"))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title PressCraft API
// @version 1.0
// @description Press release authoring and PR operations backend.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
