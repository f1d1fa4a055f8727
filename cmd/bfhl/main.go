package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Vovarama1992/bfhl-gateway/internal/ai"
	"github.com/Vovarama1992/bfhl-gateway/internal/app"
	"github.com/Vovarama1992/bfhl-gateway/internal/bfhl"
	"github.com/Vovarama1992/bfhl-gateway/internal/config"
	"github.com/Vovarama1992/bfhl-gateway/internal/log"
	"github.com/Vovarama1992/bfhl-gateway/internal/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	// --- AI ---
	aiClient := ai.NewGeminiClient(ai.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
		Timeout: cfg.AITimeout,
	}, logger)

	// --- bfhl module wiring ---
	rec := metrics.New()
	registry := bfhl.NewRegistry(aiClient, bfhl.WithFibonacciLimit(cfg.FibonacciMaxTerms))
	bfhlService := bfhl.NewService(registry, rec, logger)
	bfhlHandler := bfhl.NewHandler(bfhlService, cfg.OfficialEmail, logger)

	router := app.NewRouter(cfg.CORSAllowedOrigins, bfhlHandler, rec)

	application, err := app.New(cfg.Addr(), router, logger, cfg.ShutdownTimeout)
	if err != nil {
		logger.Error("build server failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("runtime error", "error", err)
		os.Exit(1)
	}
}
