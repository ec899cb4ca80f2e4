package routes

import (
	"context"
	"fmt"
	"time"

	"repair_tracker/internal/adapter/auth"
	"repair_tracker/internal/adapter/http/handlers"
	"repair_tracker/internal/adapter/recordstore"
	"repair_tracker/internal/config"
	"repair_tracker/internal/usecase/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const PathApp = "/app"

// RunWeb starts the browser-facing server on cfg.Port. Sessions idle for
// longer than cfg.SessionIdleTimeout are purged in the background.
func RunWeb(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	return run(ctx, "repair-web", cfg.Port, cfg, logger, func(r *gin.Engine) error {
		authenticator, err := auth.NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPasswordBcrypt)
		if err != nil {
			return fmt.Errorf("staff login: %w", err)
		}
		client, err := recordstore.NewClient(cfg.APIURL, cfg.RecordStoreTimeout, logger)
		if err != nil {
			return err
		}

		sessions := session.NewManager(authenticator, client.Orders(), client.Appointments(), logger)
		go purgeSessions(ctx, sessions, cfg.SessionIdleTimeout)

		webHandler := handlers.NewWebHandler(sessions, logger, cfg.AppEnv != "local")
		addWebRoutes(r.Group(PathApp), webHandler)
		return nil
	})
}

func addWebRoutes(rg *gin.RouterGroup, h *handlers.WebHandler) {
	rg.Use(h.Session())

	// Public screens
	rg.GET("/state", h.GetState)
	rg.POST("/navigate", h.Navigate)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.POST("/status", h.LookupStatus)
	rg.PUT("/appointments/form", h.UpdateAppointmentForm)
	rg.POST("/appointments/form/submit", h.SubmitAppointmentForm)

	// Staff screens
	staff := rg.Group("", h.RequireLogin())
	{
		id := "/:" + handlers.ParamOrderID
		staff.GET("/orders", h.SearchOrders)
		staff.POST("/orders/refresh", h.RefreshOrders)
		staff.GET("/orders/export", h.ExportOrders)
		staff.PUT("/orders/form", h.UpdateOrderForm)
		staff.POST("/orders/form/submit", h.SubmitOrderForm)
		staff.POST("/orders/form/cancel", h.CancelOrderEdit)
		staff.POST("/orders"+id+"/edit", h.EditOrder)
		staff.DELETE("/orders"+id, h.RemoveOrder)
		staff.GET("/appointments", h.SearchAppointments)
		staff.POST("/appointments/refresh", h.RefreshAppointments)
	}
}

// purgeInterval is how often idle sessions are looked for: half the idle
// timeout, never below one second.
func purgeInterval(maxIdle time.Duration) time.Duration {
	return max(maxIdle/2, time.Second)
}

func purgeSessions(ctx context.Context, sessions *session.Manager, maxIdle time.Duration) {
	ticker := time.NewTicker(purgeInterval(maxIdle))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions.PurgeIdle(maxIdle)
		}
	}
}
