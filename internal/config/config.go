package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	App      AppConfig      `mapstructure:"app"`
	Mail     MailConfig     `mapstructure:"mail"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the persistence settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains token signing settings. Access tokens carry a
// user id; reset tokens carry an email and live longer because they
// travel a slower path.
type AuthConfig struct {
	JWTSecret                 string `mapstructure:"jwt_secret"                   validate:"required,min=32"`
	TokenLifetimeMinutes      int    `mapstructure:"token_lifetime_minutes"       validate:"required,gt=0"`
	ResetTokenLifetimeMinutes int    `mapstructure:"reset_token_lifetime_minutes" validate:"required,gt=0"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// MailConfig contains mail delivery settings. Carried in configuration
// for parity with deployments even though reset tokens are currently
// returned in the response body rather than mailed.
type MailConfig struct {
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	Sender string `mapstructure:"sender"`
}
