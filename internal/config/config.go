package config

import (
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/logger"
)

// AppConfig carries process identity and HTTP listener settings.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port"`
}

// PostgresConfig holds connection and pool tuning for the primary database.
// Credentials are expected from the environment (APP_POSTGRES_*), not the file.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// AuthConfig configures token issuance. The secret must come from the
// environment (APP_AUTH_SECRET); an empty secret is a startup error, never a
// deferred runtime one.
type AuthConfig struct {
	Secret string `mapstructure:"secret"`
	// TokenTTL is the default token lifetime in seconds.
	TokenTTL int    `mapstructure:"token_ttl"`
	Issuer   string `mapstructure:"issuer"`
}

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Auth     AuthConfig          `mapstructure:"auth"`
}
