package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLimit    = 10
	DefaultLogLevel = "info"
)

// Default returns the configuration used without a config file
func Default(directory string) AppConfig {
	return AppConfig{
		Timetable: TimetableConfig{Directory: directory, Cache: true},
		Routing:   RoutingConfig{Limit: DefaultLimit},
		Log:       LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads and validates the configuration file at path
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration
func Parse(data []byte) (AppConfig, error) {
	cfg := AppConfig{
		Timetable: TimetableConfig{Cache: true},
		Routing:   RoutingConfig{Limit: DefaultLimit},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	return cfg, nil
}
