package usecase

import (
	"context"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IAppointmentRecordUseCase exposes the appointment endpoints of the stand-in
// Record Store.

type IAppointmentRecordUseCase interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
}

type AppointmentRecordUseCase struct {
	repo interfaces.IAppointmentRepository
}

var _ IAppointmentRecordUseCase = (*AppointmentRecordUseCase)(nil)

func NewAppointmentRecordUseCase(repo interfaces.IAppointmentRepository) *AppointmentRecordUseCase {
	return &AppointmentRecordUseCase{repo: repo}
}

func (u *AppointmentRecordUseCase) List(ctx context.Context) ([]entities.Appointment, error) {
	return u.repo.List(ctx)
}

func (u *AppointmentRecordUseCase) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if a.Status == "" {
		a.Status = entities.AppointmentStatusProgramada
	}
	if !a.Status.Valid() {
		return entities.Appointment{}, ErrInvalidAppointmentPayload
	}

	a.ID = uuid.NewString()
	return u.repo.Create(ctx, a)
}
