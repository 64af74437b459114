package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prosync/config"
	_ "prosync/docs" // Swagger docs
	"prosync/internal/httpserver"
	taskFile "prosync/internal/task/repository/file"
	"prosync/internal/task/store"
	"prosync/pkg/gemini"
	"prosync/pkg/log"
)

// @title       ProSync API
// @description Personal task management with summaries, grouping, calendar views, and AI suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ProSync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage path: %s", cfg.Storage.Path)

	// 3. Calendar timezone
	location, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		location = time.UTC
	}

	// 4. Task store hydrated from the snapshot file
	taskRepo := taskFile.New(cfg.Storage.Path, logger)

	taskStore, err := store.New(ctx, logger, taskRepo)
	if err != nil {
		logger.Error(ctx, "Failed to load task store: ", err)
		return
	}

	// 5. Gemini client (optional)
	var geminiClient *gemini.Client
	if cfg.Suggestions.APIKey != "" {
		geminiClient = gemini.NewClient(cfg.Suggestions.APIKey)
		if cfg.Suggestions.Model != "" {
			geminiClient.SetModel(cfg.Suggestions.Model)
		}
		geminiClient.SetTimeout(cfg.Suggestions.Timeout)
		logger.Infof(ctx, "Suggestions enabled (model: %s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "Suggestions disabled: GEMINI_API_KEY is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Store:           taskStore,
		Location:        location,
		Gemini:          geminiClient,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
