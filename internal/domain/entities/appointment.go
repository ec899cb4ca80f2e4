package entities

// AppointmentStatus represents the scheduling state of an appointment.
//
// Only Programada is ever set by this application. Confirmada and Cancelada are
// accepted from the Record Store and reserved for a confirmation workflow.
type AppointmentStatus string

const (
	AppointmentStatusProgramada AppointmentStatus = "Programada"
	AppointmentStatusConfirmada AppointmentStatus = "Confirmada"
	AppointmentStatusCancelada  AppointmentStatus = "Cancelada"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusProgramada, AppointmentStatusConfirmada, AppointmentStatusCancelada:
		return true
	}
	return false
}

// Appointment is a service appointment booked by a customer.
//
// AppointmentDate and AppointmentTime are kept as the raw strings entered in
// the form (YYYY-MM-DD and HH:MM); no plausibility checks are applied.
type Appointment struct {
	ID              string            `json:"_id,omitempty"`
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	AppointmentDate string            `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	Service         string            `json:"service"`
	Status          AppointmentStatus `json:"status"`
}

func (a Appointment) Key() string { return a.ID }
