package config

import "time"

// DatabaseConfig holds reference-database connection settings
type DatabaseConfig struct {
	// Type selects the dialector: sqlite or postgres
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`

	// Path is the SQLite file path (or ":memory:")
	Path string `mapstructure:"path"`

	// URL is a full PostgreSQL connection string; overrides the
	// individual fields below when set.
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`

	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig holds connection pool settings (PostgreSQL only)
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open"`
	MaxIdle     int           `mapstructure:"max_idle"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
