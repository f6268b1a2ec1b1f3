// Package config loads application configuration from environment
// variables (prefix UKM) layered over an optional config.yaml file.
// Environment values override file values; both override the built-in
// defaults from Default.
package config
