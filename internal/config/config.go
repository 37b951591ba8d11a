// Package config resolves process-level settings. The environment is
// read here, at the process boundary, never inside the store.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultDBFile is the data file used when TODO_DB is unset, relative
// to the current working directory.
const DefaultDBFile = "todo_data.json"

// Config holds application configuration.
type Config struct {
	// DBPath is the path of the task data file. Set via the TODO_DB
	// environment variable; defaults to DefaultDBFile.
	DBPath string `envconfig:"TODO_DB"`
}

// Load builds the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBFile
	}
	return cfg, nil
}
