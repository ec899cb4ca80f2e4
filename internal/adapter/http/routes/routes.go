package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "repair_tracker/docs" // swagger spec
	"repair_tracker/internal/config"
	"repair_tracker/internal/infrastructure/observability"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

var router = gin.Default()

// run wires tracing, middlewares, swagger and the routes added by register,
// then serves on port until the server stops.
func run(ctx context.Context, serviceName, port string, cfg config.Config, logger *zap.Logger, register func(*gin.Engine) error) error {
	shutdown, err := observability.Init(ctx, serviceName, cfg.OTelDisabled, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown observability", zap.Error(err))
		}
	}()

	setMiddlewares(serviceName, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	if err := register(router); err != nil {
		return err
	}

	logger.Info("server listening", zap.String("service", serviceName), zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Error("server exited", zap.String("service", serviceName), zap.Error(err))
		return err
	}
	return nil
}

func setMiddlewares(serviceName string, logger *zap.Logger) {
	router.Use(otelgin.Middleware(serviceName))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(r gin.IRoutes) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
