package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skanadev/match-notifier-service/internal/config"
	httpHandler "github.com/skanadev/match-notifier-service/internal/handler/http"
	"github.com/skanadev/match-notifier-service/internal/messaging"
	"github.com/skanadev/match-notifier-service/internal/provider"
	"github.com/skanadev/match-notifier-service/internal/service"
	"github.com/skanadev/match-notifier-service/internal/store"
	"github.com/skanadev/match-notifier-service/pkg/detector"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting match-notifier-service")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create Redis store for devices and tickets
	redisStore := store.NewRedisStore(
		store.RedisStoreConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		logger,
	)
	defer redisStore.Close()

	// Test Redis connection
	if err := redisStore.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create football-data API client
	footballClient := provider.NewFootballClient(
		provider.FootballClientConfig{
			BaseURL: cfg.Football.BaseURL,
			Token:   cfg.Football.Token,
			Timeout: cfg.Football.Timeout,
		},
		logger,
	)
	logger.Info().Str("base_url", cfg.Football.BaseURL).Msg("football client initialized")

	// Create FCM push sender
	sender := messaging.NewFCMSender(
		messaging.FCMSenderConfig{
			Endpoint:  cfg.FCM.Endpoint,
			ServerKey: cfg.FCM.ServerKey,
			Timeout:   cfg.FCM.Timeout,
		},
		logger,
	)
	logger.Info().Msg("FCM sender initialized")

	// Create Kafka publisher for the notification event stream
	publisher := messaging.NewKafkaPublisher(
		messaging.KafkaPublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		},
		logger,
	)
	defer publisher.Close()

	// Create event detector with fresh owned state
	det := detector.NewDetector(detector.NewScoreTracker(), detector.NewDeduper(), logger)

	// Create notifier service and poller
	notifier := service.NewNotifierService(footballClient, redisStore, sender, publisher, det, logger)
	poller := service.NewPoller(notifier, cfg.Poller.Interval, logger)
	logger.Info().Msg("notifier service initialized")

	// Start polling loop in goroutine
	go poller.Run(ctx)

	// Initialize HTTP handler
	apiHandler := httpHandler.NewAPIHandler(redisStore, logger)
	logger.Info().Msg("HTTP handler initialized")

	// Setup HTTP server routes
	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, redisStore)
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Register API routes
	apiHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	// Cancel context to stop the poller
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "match-notifier").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, store *store.RedisStore) {
	// Check Redis connection
	if err := store.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
