package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Dashboard configures the client application.
type Dashboard struct {
	// BaseURL is where the backend lives. Every gateway call is rooted here.
	BaseURL  string `env:"DASHBOARD_BASE_URL, default=http://localhost:9000"`
	LogLevel string `env:"DASHBOARD_LOG_LEVEL, default=info"`
	// ConsoleLog switches zerolog to coloured console output.
	ConsoleLog bool `env:"DASHBOARD_LOG_CONSOLE, default=true"`
	// SuccessPause is how long the form lingers on a success notice before
	// navigating back to the catalog.
	SuccessPause time.Duration `env:"DASHBOARD_SUCCESS_PAUSE, default=500ms"`
	// MetricsAddr, when set, exposes the gateway's Prometheus metrics on
	// this address (e.g. ":2112"). Empty disables the listener.
	MetricsAddr string `env:"DASHBOARD_METRICS_ADDR"`
}

// Stub configures the development stub backend.
type Stub struct {
	Port      string `env:"PORT, default=9000"`
	JWTSecret string `env:"STUB_JWT_SECRET, default=dev-only-secret"`
	// SessionTTL bounds the session cookie's validity.
	SessionTTL time.Duration `env:"STUB_SESSION_TTL, default=24h"`
	LogLevel   string        `env:"STUB_LOG_LEVEL, default=info"`

	// Seed admin account so a fresh stub is immediately usable.
	AdminEmail    string `env:"STUB_ADMIN_EMAIL, default=admin@example.com"`
	AdminPassword string `env:"STUB_ADMIN_PASSWORD, default=admin123"`
	AdminName     string `env:"STUB_ADMIN_NAME, default=Administrator"`
}

// LoadDashboard reads client configuration from the environment, consulting a
// local .env file first when present.
func LoadDashboard(ctx context.Context) (*Dashboard, error) {
	_ = godotenv.Load()
	var cfg Dashboard
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStub reads stub-backend configuration from the environment.
func LoadStub(ctx context.Context) (*Stub, error) {
	_ = godotenv.Load()
	var cfg Stub
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
