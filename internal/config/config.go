// Package config loads the tool configuration from a YAML file, laid
// over defaults. A missing file is not an error; everything works out of
// the box against a local project directory.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/worldsmith/worldsmith/internal/export"
)

// DatabaseConfig holds PostgreSQL connection parameters for the
// Postgres-backed project store.
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

// Store backends.
const (
	StoreDir      = "dir"
	StorePostgres = "postgres"
)

// Config holds all tool configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// HTTP API
	Listen string `yaml:"listen"`

	// Project store
	StoreBackend string         `yaml:"store_backend"` // "dir" or "postgres"
	DataDir      string         `yaml:"data_dir"`
	Database     DatabaseConfig `yaml:"database"`

	// Defaults applied when a project has no saved export settings.
	Export export.Options `yaml:"export"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:     "info",
		Listen:       "127.0.0.1:8442",
		StoreBackend: StoreDir,
		DataDir:      "projects",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "worldsmith",
			Password: "worldsmith",
			DBName:   "worldsmith",
			SSLMode:  "disable",
		},
		Export: export.DefaultOptions(),
	}
}

// Load reads config from a YAML file laid over Default. If the file
// doesn't exist, defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
