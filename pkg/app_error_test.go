package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no cause", func(t *testing.T) {
		e := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		if e.Unwrap() != nil {
			t.Fatalf("expected nil cause, got %v", e.Unwrap())
		}
		if e.Error() != "ORDER_NOT_FOUND: Order not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
	})

	t.Run("wrapped cause is reachable but not exposed", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		body := e.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}
