// Package config loads and validates the configuration of the csa command.
//
// Configuration is read from a YAML file and validated using struct tags.
// Missing optional values fall back to defaults.
package config
