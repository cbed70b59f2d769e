package config

import "strings"

// DBConfig contains PostgreSQL database configuration.
// HOST is intentionally left without a default: an unset host means the
// durable backend is not configured and the application runs guest-only.
type DBConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"studio"`
	Password string `env:"PASSWORD" envDefault:"studio"`
	Name     string `env:"NAME"     envDefault:"studio"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// Configured reports whether a database host has been provided.
func (c DBConfig) Configured() bool {
	return strings.TrimSpace(c.Host) != ""
}

// RedisConfig contains Redis configuration for the session store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
