// Package config loads a small YAML settings file a host program can
// read before constructing a registry. The core ecs package
// itself takes no file-based configuration; this is purely the
// ambient configuration layer a deployable-looking host program
// carries around its use of the library.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LogLevel mirrors the handful of levels a host's logger typically
// distinguishes; the ecs package never logs, so this only ever reaches
// host-program code.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config holds host-program tuning knobs.
type Config struct {
	// EntityCapacityHint is a soft hint for how many entities a host
	// expects to create; the registry itself grows on demand regardless
	// and never reads this field. Nothing in this repository reads it.
	EntityCapacityHint int `yaml:"entity_capacity_hint"`

	// LogLevel controls the verbosity of host-program logging.
	LogLevel LogLevel `yaml:"log_level"`
}

// Default returns the settings Load falls back to when no config file
// is present.
func Default() Config {
	return Config{
		EntityCapacityHint: 1024,
		LogLevel:           LogLevelInfo,
	}
}

// Load reads and parses the YAML file at path. A missing file is not
// an error: it returns Default() so callers can run with zero setup.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
