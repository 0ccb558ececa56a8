// Package config provides environment-driven configuration.
//
// Values load from environment variables (12-factor), with an optional YAML
// file overlay selected by CONFIG_FILE. CLI flags in cmd/server override
// both.
package config
