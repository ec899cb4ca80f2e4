package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"repair_tracker/internal/adapter/http/routes"
	"repair_tracker/internal/config"
	"repair_tracker/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// Stand-in Record Store: serves /api/orders and /api/appointments from memory
// or DynamoDB, selected by STORE_BACKEND.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	logger := logging.Must(cfg.LogLevel, cfg.AppEnv)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.RunRecordStore(ctx, cfg, logger); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
