package observability

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	t.Run("disabled returns noop shutdown", func(t *testing.T) {
		shutdown, err := Init(context.Background(), "repair-tracker-test", true, zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("unexpected shutdown error: %v", err)
		}
	})

	t.Run("stdout exporter without endpoint", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
		shutdown, err := Init(context.Background(), "repair-tracker-test", false, zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("unexpected shutdown error: %v", err)
		}
	})
}
