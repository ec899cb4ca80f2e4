package interfaces

import (
	"errors"
	"fmt"
)

// Errors returned by IOrderStore and IAppointmentStore implementations.
//
// Callers classify failures with errors.Is; none of them is retried.
var (
	// ErrNetworkFailure means the request never completed.
	ErrNetworkFailure = errors.New("record store unreachable")
	// ErrServerRejection means the Record Store answered with a non-2xx status.
	ErrServerRejection = errors.New("record store rejected the request")
	// ErrRecordNotFound means the Record Store answered 404 on a lookup.
	ErrRecordNotFound = errors.New("record not found")
)

// RejectionError carries the status of a non-2xx Record Store answer.
// It matches ErrServerRejection (or ErrRecordNotFound on 404) with errors.Is.
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("record store rejected the request: status %d", e.StatusCode)
	}
	return fmt.Sprintf("record store rejected the request: status %d: %s", e.StatusCode, e.Message)
}

func (e *RejectionError) Is(target error) bool {
	if target == ErrServerRejection {
		return true
	}
	return target == ErrRecordNotFound && e.StatusCode == 404
}
