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

// @title           Repair Tracker API
// @version         1.0
// @description     Repair-shop orders and appointments: browser session API and the Record Store REST API.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /

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

	if err := routes.RunWeb(ctx, cfg, logger); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
