// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the service needs to start: the Postgres
// connection settings and the HTTP listen port. All of them are required;
// the service refuses to start with a partial configuration.
type Config struct {
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string
	Port      string
}

// Load reads the configuration from environment variables. It collects every
// missing required variable so a misconfigured deployment reports all
// problems at once instead of one per restart.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:    os.Getenv("DB_HOST"),
		DBPort:    os.Getenv("DB_PORT"),
		DBUser:    os.Getenv("DB_USER"),
		DBPass:    os.Getenv("DB_PASS"),
		DBName:    os.Getenv("DB_NAME"),
		DBSSLMode: os.Getenv("DB_SSLMODE"),
		Port:      os.Getenv("PORT"),
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}

	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"DB_HOST", cfg.DBHost},
		{"DB_PORT", cfg.DBPort},
		{"DB_USER", cfg.DBUser},
		{"DB_PASS", cfg.DBPass},
		{"DB_NAME", cfg.DBName},
		{"PORT", cfg.Port},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// DSN builds the Postgres connection URL understood by pgx.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
