// Package config loads and validates the exporter's YAML configuration.
//
// Values of the form ${VAR} are expanded from the environment before parsing,
// which is how the session tokens are normally injected.
package config
