package form

import (
	"fmt"
	"sync"

	"repair_tracker/internal/domain/entities"
)

// AppointmentFields holds the raw values of the public booking form.
type AppointmentFields struct {
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerPhone   string `json:"customerPhone" validate:"required,number,max=10"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	AppointmentTime string `json:"appointmentTime" validate:"required"`
	Service         string `json:"service" validate:"required"`
}

type AppointmentFormState struct {
	Fields AppointmentFields          `json:"fields"`
	Status entities.AppointmentStatus `json:"status"`
	Error  string                     `json:"error,omitempty"`
}

// AppointmentForm is the booking view model. Appointments are only ever
// created, always with status Programada.
type AppointmentForm struct {
	mu     sync.Mutex
	fields AppointmentFields
	err    string
}

func NewAppointmentForm() *AppointmentForm {
	return &AppointmentForm{}
}

func (f *AppointmentForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = AppointmentFields{}
	f.err = ""
}

func (f *AppointmentForm) State() AppointmentFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return AppointmentFormState{
		Fields: f.fields,
		Status: entities.AppointmentStatusProgramada,
		Error:  f.err,
	}
}

func (f *AppointmentForm) SetError(msg string) {
	f.mu.Lock()
	f.err = msg
	f.mu.Unlock()
}

func (f *AppointmentForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *AppointmentForm) SetCustomerName(v string) { f.set(func(a *AppointmentFields) { a.CustomerName = v }) }
func (f *AppointmentForm) SetDate(v string)         { f.set(func(a *AppointmentFields) { a.AppointmentDate = v }) }
func (f *AppointmentForm) SetTime(v string)         { f.set(func(a *AppointmentFields) { a.AppointmentTime = v }) }
func (f *AppointmentForm) SetService(v string)      { f.set(func(a *AppointmentFields) { a.Service = v }) }

// SetCustomerPhone keeps the previous value unless v is at most ten digits.
func (f *AppointmentForm) SetCustomerPhone(v string) bool {
	if !acceptPhone(v) {
		return false
	}
	f.set(func(a *AppointmentFields) { a.CustomerPhone = v })
	return true
}

func (f *AppointmentForm) Apply(in AppointmentFields) error {
	f.SetCustomerName(in.CustomerName)
	f.SetDate(in.AppointmentDate)
	f.SetTime(in.AppointmentTime)
	f.SetService(in.Service)
	if !f.SetCustomerPhone(in.CustomerPhone) {
		return fmt.Errorf("%w: [customerPhone]", ErrRejectedInput)
	}
	return nil
}

// Submit validates the required fields and builds a Programada appointment.
func (f *AppointmentForm) Submit() (entities.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := validate.Struct(f.fields); err != nil {
		return entities.Appointment{}, validationError(err)
	}
	return entities.Appointment{
		CustomerName:    f.fields.CustomerName,
		CustomerPhone:   f.fields.CustomerPhone,
		AppointmentDate: f.fields.AppointmentDate,
		AppointmentTime: f.fields.AppointmentTime,
		Service:         f.fields.Service,
		Status:          entities.AppointmentStatusProgramada,
	}, nil
}

func (f *AppointmentForm) set(apply func(*AppointmentFields)) {
	f.mu.Lock()
	apply(&f.fields)
	f.mu.Unlock()
}
