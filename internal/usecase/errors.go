package usecase

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidOrderNumber  = errors.New("invalid order number")
	ErrInvalidOrderPayload = errors.New("invalid order payload")
	ErrOrderNumberTaken    = errors.New("order number already exists")
	ErrRemoveNotConfirmed  = errors.New("remove not confirmed")

	ErrInvalidAppointmentPayload = errors.New("invalid appointment payload")
)
