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

	"go.uber.org/zap"

	"legal-summarizer/internal/config"
	"legal-summarizer/internal/database"
	"legal-summarizer/internal/handlers"
	"legal-summarizer/internal/logger"
	"legal-summarizer/internal/middleware"
	"legal-summarizer/internal/router"
	"legal-summarizer/internal/services"
)

// writeTimeout caps a summarize request; the provider call has no timeout
// of its own.
const writeTimeout = 3 * time.Minute

// inFlightTTL bounds a Redis lock left behind by a crashed instance. It
// outlasts writeTimeout so a live request never loses its lock.
const inFlightTTL = writeTimeout + 2*time.Minute

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg, cfgErr := config.Load()
	var missing *config.Error
	if cfgErr != nil && !errors.As(cfgErr, &missing) {
		log.Fatalf("✗ Configuration invalid: %v", cfgErr)
	}

	// ──── Step 2: Initialize Logger ────
	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}
	defer zl.Sync()

	zl.Info("🚀 Starting Legal Text Summarizer...")
	if cfgErr != nil {
		zl.Error("✗ Configuration error; serving error page only", zap.String("key", missing.Key), zap.Error(cfgErr))
	} else {
		zl.Info("✓ Environment variables loaded", zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	}

	var (
		runner *services.Summarizer
		closer func() error
	)
	if cfgErr == nil {
		// ──── Step 3: Initialize Completion Client ────
		var client services.Completer
		client, closer, err = newCompleter(cfg)
		if err != nil {
			zl.Fatal("✗ Completion client initialization failed", zap.Error(err))
		}
		zl.Info("✓ Completion client initialized")

		// ──── Step 4: In-flight Guard ────
		guard, closeGuard, err := newGuard(cfg, zl)
		if err != nil {
			zl.Fatal("✗ Redis connection failed", zap.Error(err))
		}
		defer closeGuard()

		runner = services.NewSummarizer(client, guard, zl)
	}
	if closer != nil {
		defer closer()
	}

	// ──── Step 5: Start HTTP Server ────
	extractor := services.NewFileExtractService()
	pageHandler := handlers.NewPageHandler(runner, extractor, cfgErr, zl)
	apiHandler := handlers.NewAPIHandler(runner, extractor, zl)

	summarizeLimiter := middleware.NewRateLimiter(cfg.SummarizeRateLimit, time.Minute)
	defer summarizeLimiter.Stop()

	r := router.New(zl, pageHandler, apiHandler, summarizeLimiter, cfgErr)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		zl.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	zl.Info(fmt.Sprintf("✓ Legal Text Summarizer ready on http://localhost:%s", cfg.Port))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		zl.Fatal("Server error", zap.Error(err))
	}
}

func newCompleter(cfg *config.Config) (services.Completer, func() error, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := services.NewGeminiClient(context.Background(), cfg.APIKey(), cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	default:
		return services.NewGroqClient(cfg.APIKey(), cfg.BaseURL, cfg.Model), nil, nil
	}
}

func newGuard(cfg *config.Config, zl *zap.Logger) (services.InFlightGuard, func(), error) {
	if cfg.RedisURL == "" {
		zl.Info("✓ In-flight guard: in-memory")
		return services.NewMemoryGuard(), func() {}, nil
	}

	client, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	zl.Info("✓ In-flight guard: Redis connected")
	return services.NewRedisGuard(client, inFlightTTL), func() { client.Close() }, nil
}
