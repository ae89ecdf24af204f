// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into
// structured Go types and validates that required values are
// present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

/*
	Env vars are read with the prefix LIGHTBNB_. The prefix is stripped,
	the key lowercased and "." is used as the nesting delimiter, so

	  LIGHTBNB_DATABASE.HOST -> database.host -> Config.Database.Host

	Underscores inside a segment are kept (LIGHTBNB_DATABASE.SSL_MODE ->
	database.ssl_mode).
*/

// EnvPrefix is the prefix every application variable must carry.
const EnvPrefix = "LIGHTBNB_"

// ServiceName identifies the service in logs, traces and APM dashboards.
const ServiceName = "lightbnb"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores session signing settings.
//
// SessionTTL defaults to 24h when left empty.
type AuthConfig struct {
	SecretKey  string        `koanf:"secret_key" validate:"required,min=16"`
	SessionTTL time.Duration `koanf:"session_ttl"`
}

// IntegrationConfig holds credentials for third-party services.
// An empty ResendAPIKey disables outgoing e-mail.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
}

// DefaultSessionTTL is used when auth.session_ttl is not set.
const DefaultSessionTTL = 24 * time.Hour

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config, validates it, applies defaults and returns the result.
//
// It logs fatally (and exits) on any load or validation failure: there is
// nothing useful the application can do without a valid config.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load initial env variables")
	}

	mainConfig := &Config{}

	// "" unmarshals everything from the root.
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal main config")
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// applyDefaults fills optional blocks and forces the values that must not
// be configured per deployment (service name, telemetry environment).
func (c *Config) applyDefaults() {
	if c.Auth.SessionTTL <= 0 {
		c.Auth.SessionTTL = DefaultSessionTTL
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
}

// IsLocal reports whether the app runs on a developer machine.
// SQL statements are only trace-logged in this environment.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
