package usecase

import (
	"errors"

	"repair_tracker/internal/usecase/form"
	"repair_tracker/internal/usecase/interfaces"
)

// Operation names the user action a failure is reported against.
type Operation int

const (
	OpSubmitOrder Operation = iota
	OpRemoveOrder
	OpRefreshOrders
	OpStatusLookup
	OpBookAppointment
	OpRefreshAppointments
	OpLogin
)

const (
	MsgOrderProcessing     = "Error al procesar la orden"
	MsgOrderRemove         = "Error al eliminar la orden"
	MsgOrdersLoad          = "Error al cargar las órdenes"
	MsgOrderNotFound       = "Orden no encontrada"
	MsgOrderLookup         = "Error al buscar la orden"
	MsgAppointmentBooking  = "No se pudo agendar la cita. Intente nuevamente."
	MsgAppointmentsLoad    = "Error al cargar las citas"
	MsgInvalidCredentials  = "Usuario o contraseña incorrectos"
	MsgIncompleteForm      = "Complete todos los campos obligatorios"
	MsgRemoveConfirmPrompt = "¿Estás seguro de que quieres eliminar esta orden?"
)

// UserMessage converts a failure into the text shown to the user. It never
// exposes transport details.
func UserMessage(op Operation, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, form.ErrIncompleteForm) || errors.Is(err, form.ErrRejectedInput) {
		return MsgIncompleteForm
	}

	switch op {
	case OpSubmitOrder:
		return MsgOrderProcessing
	case OpRemoveOrder:
		return MsgOrderRemove
	case OpRefreshOrders:
		return MsgOrdersLoad
	case OpStatusLookup:
		if errors.Is(err, ErrOrderNotFound) || errors.Is(err, interfaces.ErrRecordNotFound) || errors.Is(err, ErrInvalidOrderNumber) {
			return MsgOrderNotFound
		}
		return MsgOrderLookup
	case OpBookAppointment:
		return MsgAppointmentBooking
	case OpRefreshAppointments:
		return MsgAppointmentsLoad
	case OpLogin:
		return MsgInvalidCredentials
	}
	return MsgOrderProcessing
}
