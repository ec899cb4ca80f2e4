package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// MinSessionIdleTimeout is the shortest accepted SESSION_IDLE_TIMEOUT.
const MinSessionIdleTimeout = time.Second

// Config carries environment-driven settings shared by every binary.
type Config struct {
	Port               string
	StorePort          string
	APIURL             string
	RecordStoreTimeout time.Duration

	AdminUsername       string
	AdminPasswordBcrypt string
	SessionIdleTimeout  time.Duration

	StoreBackend      string
	OrdersTable       string
	AppointmentsTable string

	LogLevel     string
	AppEnv       string
	OTelDisabled bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                getenvDefault("PORT", "8080"),
		StorePort:           getenvDefault("STORE_PORT", "4000"),
		APIURL:              strings.TrimRight(getenvDefault("API_URL", "http://localhost:4000"), "/"),
		AdminUsername:       strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPasswordBcrypt: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_BCRYPT")),
		SessionIdleTimeout:  30 * time.Minute,
		StoreBackend:        strings.ToLower(getenvDefault("STORE_BACKEND", BackendMemory)),
		OrdersTable:         getenvDefault("ORDERS_TABLE", "repair_orders"),
		AppointmentsTable:   getenvDefault("APPOINTMENTS_TABLE", "repair_appointments"),
		LogLevel:            getenvDefault("LOG_LEVEL", "info"),
		AppEnv:              getenvDefault("APP_ENV", "local"),
		OTelDisabled:        isTruthy(os.Getenv("OTEL_DISABLED")),
	}

	if raw := strings.TrimSpace(os.Getenv("RECORD_STORE_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("RECORD_STORE_TIMEOUT must be a non-negative duration")
		}
		cfg.RecordStoreTimeout = d
	}

	if raw := strings.TrimSpace(os.Getenv("SESSION_IDLE_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < MinSessionIdleTimeout {
			return Config{}, fmt.Errorf("SESSION_IDLE_TIMEOUT must be a duration of at least %s", MinSessionIdleTimeout)
		}
		cfg.SessionIdleTimeout = d
	}

	switch cfg.StoreBackend {
	case BackendDynamoDB, BackendMemory:
	default:
		return Config{}, fmt.Errorf("STORE_BACKEND must be %q or %q", BackendDynamoDB, BackendMemory)
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
