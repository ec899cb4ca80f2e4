package repository

import (
	"context"
	"sync"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"
)

// AppointmentMemoryRepository keeps appointments in process memory, in
// insertion order.
type AppointmentMemoryRepository struct {
	mu           sync.RWMutex
	appointments []entities.Appointment
	ids          map[string]struct{}
}

var _ interfaces.IAppointmentRepository = (*AppointmentMemoryRepository)(nil)

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{ids: make(map[string]struct{})}
}

func (r *AppointmentMemoryRepository) List(_ context.Context) ([]entities.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out, nil
}

func (r *AppointmentMemoryRepository) Create(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[a.ID]; ok {
		return entities.Appointment{}, interfaces.ErrRecordExists
	}
	r.ids[a.ID] = struct{}{}
	r.appointments = append(r.appointments, a)
	return a, nil
}
