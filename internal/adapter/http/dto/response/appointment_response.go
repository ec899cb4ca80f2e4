package response

import "repair_tracker/internal/domain/entities"

type AppointmentResponse struct {
	ID              string `json:"_id"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Service         string `json:"service"`
	Status          string `json:"status"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Service:         a.Service,
		Status:          string(a.Status),
	}
}

func FromAppointments(list []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAppointment(a))
	}
	return out
}
