package usecase

import (
	"context"
	"sync"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/collection"
	"repair_tracker/internal/usecase/form"
	"repair_tracker/internal/usecase/interfaces"
	"repair_tracker/internal/usecase/search"

	"go.uber.org/zap"
)

type AppointmentView struct {
	Query        string                 `json:"query"`
	Appointments []entities.Appointment `json:"appointments"`
	Total        int                    `json:"total"`
}

// IAppointmentSyncUseCase backs the public booking form and the staff
// appointment list.

type IAppointmentSyncUseCase interface {
	Refresh(ctx context.Context) error
	Create(ctx context.Context, payload entities.Appointment) (entities.Appointment, error)
	Submit(ctx context.Context) (entities.Appointment, error)
	Search(query string) AppointmentView
	View() AppointmentView
	Form() *form.AppointmentForm
	LastError() string
	Clear()
}

type AppointmentSyncUseCase struct {
	store  interfaces.IAppointmentStore
	cache  *collection.Collection[entities.Appointment]
	form   *form.AppointmentForm
	logger *zap.Logger

	mu      sync.Mutex
	query   string
	lastErr string
}

var _ IAppointmentSyncUseCase = (*AppointmentSyncUseCase)(nil)

func NewAppointmentSyncUseCase(store interfaces.IAppointmentStore, logger *zap.Logger) *AppointmentSyncUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppointmentSyncUseCase{
		store:  store,
		cache:  collection.New[entities.Appointment](),
		form:   form.NewAppointmentForm(),
		logger: logger,
	}
}

func (u *AppointmentSyncUseCase) Refresh(ctx context.Context) error {
	appointments, err := u.store.List(ctx)
	if err != nil {
		u.logger.Warn("[appointment][sync] refresh failed", zap.Error(err))
		u.setLastError(UserMessage(OpRefreshAppointments, err))
		return err
	}
	u.cache.Load(appointments)
	u.setLastError("")
	u.logger.Info("[appointment][sync] refresh done", zap.Int("count", len(appointments)))
	return nil
}

// Create books payload. New appointments always start as Programada.
func (u *AppointmentSyncUseCase) Create(ctx context.Context, payload entities.Appointment) (entities.Appointment, error) {
	payload.ID = ""
	payload.Status = entities.AppointmentStatusProgramada
	u.logger.Debug("[appointment][sync] create start", zap.String("date", payload.AppointmentDate), zap.String("time", payload.AppointmentTime))

	created, err := u.store.Create(ctx, payload)
	if err != nil {
		u.logger.Warn("[appointment][sync] create failed", zap.Error(err))
		u.form.SetError(UserMessage(OpBookAppointment, err))
		return entities.Appointment{}, err
	}

	u.cache.Insert(created)
	u.form.Reset()
	u.logger.Info("[appointment][sync] create done", zap.String("appointment_id", created.ID))
	return created, nil
}

func (u *AppointmentSyncUseCase) Submit(ctx context.Context) (entities.Appointment, error) {
	payload, err := u.form.Submit()
	if err != nil {
		u.form.SetError(UserMessage(OpBookAppointment, err))
		return entities.Appointment{}, err
	}
	return u.Create(ctx, payload)
}

func (u *AppointmentSyncUseCase) Search(query string) AppointmentView {
	u.mu.Lock()
	u.query = query
	u.mu.Unlock()
	return u.View()
}

func (u *AppointmentSyncUseCase) View() AppointmentView {
	u.mu.Lock()
	q := u.query
	u.mu.Unlock()

	all := u.cache.Snapshot()
	return AppointmentView{Query: q, Appointments: search.Appointments(all, q), Total: len(all)}
}

func (u *AppointmentSyncUseCase) Form() *form.AppointmentForm {
	return u.form
}

func (u *AppointmentSyncUseCase) LastError() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastErr
}

func (u *AppointmentSyncUseCase) Clear() {
	u.cache.Clear()
	u.form.Reset()
	u.mu.Lock()
	u.query = ""
	u.lastErr = ""
	u.mu.Unlock()
}

func (u *AppointmentSyncUseCase) setLastError(msg string) {
	u.mu.Lock()
	u.lastErr = msg
	u.mu.Unlock()
}
