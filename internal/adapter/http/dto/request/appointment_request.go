package request

import (
	"strings"

	"repair_tracker/internal/domain/entities"
)

// AppointmentRequest is the body of POST /api/appointments.
type AppointmentRequest struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`
	Service         string `json:"service" binding:"required"`
	Status          string `json:"status"`
}

func (r AppointmentRequest) ToEntity() entities.Appointment {
	return entities.Appointment{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
		Service:         r.Service,
		Status:          entities.AppointmentStatus(strings.TrimSpace(r.Status)),
	}
}
