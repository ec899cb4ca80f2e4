package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("API_URL", "")
		t.Setenv("RECORD_STORE_TIMEOUT", "")
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("SESSION_IDLE_TIMEOUT", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "8080", cfg.Port)
		require.Equal(t, "4000", cfg.StorePort)
		require.Equal(t, "http://localhost:4000", cfg.APIURL)
		require.Zero(t, cfg.RecordStoreTimeout)
		require.Equal(t, BackendMemory, cfg.StoreBackend)
		require.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("API_URL", "http://store.local:9000/")
		t.Setenv("RECORD_STORE_TIMEOUT", "3s")
		t.Setenv("STORE_BACKEND", "DynamoDB")
		t.Setenv("OTEL_DISABLED", "yes")
		t.Setenv("SESSION_IDLE_TIMEOUT", "5m")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "http://store.local:9000", cfg.APIURL)
		require.Equal(t, 3*time.Second, cfg.RecordStoreTimeout)
		require.Equal(t, BackendDynamoDB, cfg.StoreBackend)
		require.True(t, cfg.OTelDisabled)
		require.Equal(t, 5*time.Minute, cfg.SessionIdleTimeout)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("RECORD_STORE_TIMEOUT", "soon")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("invalid session idle timeout", func(t *testing.T) {
		t.Setenv("RECORD_STORE_TIMEOUT", "")
		for _, raw := range []string{"0s", "1ns", "999ms", "later"} {
			t.Setenv("SESSION_IDLE_TIMEOUT", raw)
			_, err := LoadConfig()
			require.Error(t, err, raw)
		}

		t.Setenv("SESSION_IDLE_TIMEOUT", "1s")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, MinSessionIdleTimeout, cfg.SessionIdleTimeout)
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("SESSION_IDLE_TIMEOUT", "")
		t.Setenv("RECORD_STORE_TIMEOUT", "")
		t.Setenv("STORE_BACKEND", "postgres")
		_, err := LoadConfig()
		require.Error(t, err)
	})
}
