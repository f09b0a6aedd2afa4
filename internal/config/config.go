package config

import (
	"fmt"
	"time"
)

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultDatabase returns connection parameters for a local development database.
func DefaultDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     5432,
		User:     "winter",
		Password: "winter",
		DBName:   "winter",
		SSLMode:  "disable",
	}
}

// Journal configures persistence of simulation events.
type Journal struct {
	Enabled       bool           `yaml:"enabled"`
	BufferSize    int            `yaml:"buffer_size"`    // events queued before Record starts dropping
	BatchSize     int            `yaml:"batch_size"`     // rows per COPY
	FlushInterval time.Duration  `yaml:"flush_interval"` // max age of a partial batch
	Database      DatabaseConfig `yaml:"database"`
}

// DefaultJournal returns a disabled journal with working buffer settings.
func DefaultJournal() Journal {
	return Journal{
		Enabled:       false,
		BufferSize:    4096,
		BatchSize:     256,
		FlushInterval: time.Second,
		Database:      DefaultDatabase(),
	}
}

func (j Journal) validate() error {
	if !j.Enabled {
		return nil
	}
	if j.BufferSize <= 0 {
		return fmt.Errorf("journal.buffer_size must be positive, got %d", j.BufferSize)
	}
	if j.BatchSize <= 0 {
		return fmt.Errorf("journal.batch_size must be positive, got %d", j.BatchSize)
	}
	if j.FlushInterval <= 0 {
		return fmt.Errorf("journal.flush_interval must be positive, got %s", j.FlushInterval)
	}
	return nil
}
