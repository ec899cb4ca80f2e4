package interfaces

import (
	"context"
	"repair_tracker/internal/domain/entities"
)

// IAppointmentRepository abstracts appointment persistence for the stand-in Record Store.
//
//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/mock_appointment_repository.go -package=mock_interfaces

type IAppointmentRepository interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
}
