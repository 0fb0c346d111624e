// Package config defines client configuration structures and loading hooks.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// APIBaseURL is the base URL of the external academic-events API,
	// e.g. "http://localhost:8000/api".
	APIBaseURL string `koanf:"api_base_url"`

	// SessionToken is the bearer credential attached to outgoing calls
	// when present. Empty means calls go out unauthenticated.
	SessionToken string `koanf:"session_token"`

	// Role is the effective session role: administrador, maestro, alumno.
	Role string `koanf:"role"`

	// UserName is the display name of the session user.
	UserName string `koanf:"user_name"`

	// UserID identifies the session user.
	UserID int `koanf:"user_id"`

	// RequestTimeoutMS bounds each API request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`
}

// New creates a Config with defaults. Overrides come from Load.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		APIBaseURL:       "http://localhost:8000/api",
		RequestTimeoutMS: 30_000,
	}
}
