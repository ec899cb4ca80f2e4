package interfaces

import (
	"context"
	"repair_tracker/internal/domain/entities"
)

// IAppointmentStore abstracts the Record Store appointment endpoints.
//
//go:generate mockgen -source=appointment_store_interface.go -destination=mocks/mock_appointment_store.go -package=mock_interfaces

type IAppointmentStore interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
}
