package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"presscraft/internal/executor/config"
	"presscraft/internal/executor/delivery/consumer"
	"presscraft/internal/executor/repository"
	"presscraft/internal/executor/service"
	"presscraft/internal/executor/strategy"
	"presscraft/pkg/common"
	"presscraft/pkg/kafka"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"
	"presscraft/pkg/newssearch"
	"presscraft/pkg/postgres"
	"presscraft/pkg/redis"
	"presscraft/pkg/telegram"
	"presscraft/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "execution-service"

var (
	configPath  string
	metricsPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the execution service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	appLogger.Info("Starting Execution Service", zap.String("name", cfg.App.Name))
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
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
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
		appLogger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer redisClient.Close()

	if err := redisClient.EnsureGroup(ctx, common.RedisStreamClippingTaskExecution, common.RedisStreamGroup); err != nil {
		appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
	}

	// Initialize repositories
	subscriptionRepo := repository.NewSubscriptionRepository(db.DB)
	runRepo := repository.NewClippingRunRepository(db.DB)
	clippingRepo := repository.NewNewsClippingRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)

	searcher, err := newssearch.New(cfg.NewsSearch, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize news search", zap.Error(err))
	}

	telegramNotifier := telegram.NewNopNotifier()
	if cfg.Telegram.Enabled {
		telegramNotifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", zap.Error(err))
		}
	}

	publisher := kafka.NewPublisher(cfg.Kafka, appLogger)
	defer publisher.Close()

	// Initialize Strategies
	strategies := []strategy.ClippingStrategy{
		strategy.NewNewsClippingStrategy(searcher, clippingRepo, telegramNotifier, publisher, loc, appLogger),
		strategy.NewCoverageReportStrategy(eventRepo, telegramNotifier, publisher, loc, appLogger),
	}

	// Initialize executor service
	executorSvc := service.NewExecutorService(
		redisClient.Client,
		subscriptionRepo,
		runRepo,
		appLogger,
		cfg.Executor.TaskTimeout,
		cfg.Executor.PendingMaxIdle,
		strategies,
	)

	// Initialize and start the Redis consumer
	redisConsumer := consumer.NewRedisConsumer(cfg, executorSvc, appLogger)
	redisConsumer.Start(ctx)

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", metricsPort),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Metrics server failed", logger.ErrorField(err))
		}
	}()

	appLogger.Info("Execution service started. Waiting for tasks...")

	// Wait for interrupt signal to gracefully shut down the service
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down execution service...")
	cancel()
	redisConsumer.Stop()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = metricsServer.Shutdown(shutdownCtx)

	appLogger.Info("Execution service stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "execution-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-executor.yaml", "Path to the configuration file")
	serveCmd.Flags().IntVar(&metricsPort, "metrics-port", 9091, "Port of the Prometheus metrics endpoint")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing execution-service CLI: %s\n", err)
		os.Exit(1)
	}
}
