// Package config loads and validates the adapter configuration.
//
// Configuration is a single YAML file with ${VAR} environment variable
// expansion. Every field has a default; an empty file is a valid config.
package config
