// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A .env file (or the process environment) may override the input path and
// output format via ROKI_INPUT and ROKI_FORMAT.
package config
