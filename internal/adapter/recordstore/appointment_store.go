package recordstore

import (
	"context"
	"net/http"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"
)

// AppointmentStore is the HTTP implementation of interfaces.IAppointmentStore.
type AppointmentStore struct {
	c *Client
}

var _ interfaces.IAppointmentStore = (*AppointmentStore)(nil)

func (s *AppointmentStore) List(ctx context.Context) ([]entities.Appointment, error) {
	var out []entities.Appointment
	if err := s.c.do(ctx, "appointments.list", http.MethodGet, pathAppointments, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Appointment{}
	}
	return out, nil
}

func (s *AppointmentStore) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	a.ID = ""
	var out entities.Appointment
	if err := s.c.do(ctx, "appointments.create", http.MethodPost, pathAppointments, a, &out); err != nil {
		return entities.Appointment{}, err
	}
	return out, nil
}
