package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// A *Config returned by Load or FromMap is fully valid and must be treated
// as read-only.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Frontend FrontendConfig
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `env:"PORT" validate:"gte=0,lte=65535"`
	LogLevel string `env:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL is validated syntactically; no connection is ever attempted.
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" validate:"required,url"`
}

// FrontendConfig describes the web client that consumes this API.
type FrontendConfig struct {
	URL string `env:"FRONTEND_URL" validate:"required,url"`
}
