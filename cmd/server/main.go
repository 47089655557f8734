package main

// @title           Student API
// @version         1.0
// @description     Students, subjects, topics and completion tracking.
// @host            localhost:8080
// @BasePath        /api
// @schemes         http https

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"student-api/internal/adapters/kafka"
	"student-api/internal/adapters/storage"
	"student-api/internal/config"
	"student-api/internal/database"
	"student-api/internal/logger"
	"student-api/internal/router"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to init logger: ", err)
	}
	defer func() { _ = logg.Sync() }()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logg.Info("Starting student api", zap.String("env", cfg.Env), zap.String("db_driver", cfg.Database.Driver))

	db, err := database.NewConnection(cfg.Database, logg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Prepare(ctx, db, cfg.Database, logg); err != nil {
		return err
	}

	deps := router.Dependencies{Config: cfg, DB: db, Log: logg}

	if cfg.Redis.URL != "" {
		redisClient, err := database.NewRedisConnection(cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		deps.Redis = redisClient
		logg.Info("Rate limiting enabled",
			zap.Int("requests", cfg.Redis.RateLimitRequests),
			zap.Duration("window", cfg.Redis.RateLimitWindow),
		)
	}

	if cfg.Kafka.Enabled() {
		publisher := kafka.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logg)
		defer publisher.Close()
		deps.Events = publisher
		logg.Info("Kafka events enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	if cfg.MinIO.Enabled() {
		store, err := storage.NewMinIOStore(ctx,
			cfg.MinIO.Endpoint,
			cfg.MinIO.AccessKey,
			cfg.MinIO.SecretKey,
			cfg.MinIO.Bucket,
			cfg.MinIO.UseSSL,
			cfg.MinIO.PublicURL,
			logg,
		)
		if err != nil {
			return err
		}
		deps.Images = store
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Server starting", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logg.Info("Server stopped")
	return nil
}
