package routes

import (
	"context"
	"fmt"
	"os"

	"repair_tracker/internal/adapter/http/handlers"
	"repair_tracker/internal/adapter/persistence/repository"
	"repair_tracker/internal/config"
	"repair_tracker/internal/infrastructure/database"
	"repair_tracker/internal/usecase"
	"repair_tracker/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathAPI          = "/api"
	PathOrders       = "/orders"
	PathAppointments = "/appointments"
)

// RunRecordStore starts the stand-in Record Store API on cfg.StorePort.
func RunRecordStore(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	return run(ctx, "repair-record-store", cfg.StorePort, cfg, logger, func(r *gin.Engine) error {
		orderRepo, apptRepo, err := buildRepositories(ctx, cfg, logger)
		if err != nil {
			return err
		}
		orderHandler := handlers.NewOrderRecordHandler(usecase.NewOrderRecordUseCase(orderRepo), logger)
		apptHandler := handlers.NewAppointmentRecordHandler(usecase.NewAppointmentRecordUseCase(apptRepo), logger)
		addRecordStoreRoutes(r.Group(PathAPI), orderHandler, apptHandler)
		return nil
	})
}

func addRecordStoreRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderRecordHandler, apptHandler *handlers.AppointmentRecordHandler) {
	orders := rg.Group(PathOrders)
	{
		key := "/:" + handlers.ParamOrderKey
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		// PUT and DELETE are keyed by id; GET is keyed by order number.
		orders.PUT(key, orderHandler.UpdateOrder)
		orders.DELETE(key, orderHandler.DeleteOrder)
		orders.GET(key, orderHandler.GetOrderByNumber)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", apptHandler.ListAppointments)
		appointments.POST("", apptHandler.CreateAppointment)
	}
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.IOrderRepository, interfaces.IAppointmentRepository, error) {
	if cfg.StoreBackend != config.BackendDynamoDB {
		logger.Info("record store backend: memory")
		return repository.NewOrderMemoryRepository(), repository.NewAppointmentMemoryRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	// A local DynamoDB starts empty; provisioned tables are left alone.
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		err := database.EnsureTables(ctx, ddb, logger,
			database.TableSpec{Name: cfg.OrdersTable, IndexedFields: []string{"order_number"}},
			database.TableSpec{Name: cfg.AppointmentsTable},
		)
		if err != nil {
			return nil, nil, fmt.Errorf("prepare dynamodb tables: %w", err)
		}
	}
	logger.Info("record store backend: dynamodb",
		zap.String("orders_table", cfg.OrdersTable),
		zap.String("appointments_table", cfg.AppointmentsTable),
	)
	return repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable),
		repository.NewAppointmentDynamoRepository(ddb, cfg.AppointmentsTable),
		nil
}
