package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the guard.
	ApiKey string `mapstructure:"api_key" default:""`
	// Environment is the deployment environment (development, production).
	Environment string `mapstructure:"environment" default:"development"`
	// AllowOrigins is the comma-separated CORS allow list for the UI.
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// IsValidEnvironment checks if the configured environment is valid.
func (c Config) IsValidEnvironment() bool {
	switch c.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
		return true
	default:
		return false
	}
}

// IsDevelopment reports whether the server runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}
