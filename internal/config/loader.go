package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads YAML config from path and overlays APP_* environment variables.
// Secrets (database credentials, signing secret) are expected from the
// environment only; missing ones fail the load so the process never starts
// half-configured.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	// AutomaticEnv alone doesn't surface keys absent from the file during
	// Unmarshal, so secret-bearing keys are bound explicitly.
	for _, key := range []string{
		"postgres.user",
		"postgres.password",
		"postgres.db",
		"auth.secret",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	v.SetDefault("auth.token_ttl", 86400)
	v.SetDefault("auth.issuer", "library-service")

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// validate enforces presence of configuration the process cannot run without.
// The signing secret in particular must fail here, at startup, rather than on
// the first login request.
func (c *Config) validate() error {
	var missing []string
	if c.Postgres.User == "" {
		missing = append(missing, "postgres.user (APP_POSTGRES_USER)")
	}
	if c.Postgres.Password == "" {
		missing = append(missing, "postgres.password (APP_POSTGRES_PASSWORD)")
	}
	if c.Postgres.DBName == "" {
		missing = append(missing, "postgres.db (APP_POSTGRES_DB)")
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		missing = append(missing, "auth.secret (APP_AUTH_SECRET)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}
