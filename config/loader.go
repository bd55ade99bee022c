package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml, then applies .env / environment overrides.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	applyEnvOverrides(&Config)
	return nil
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "journeys"
	}
	return cfg, nil
}

// applyEnvOverrides lets a .env file or the environment override the input
// path and output format without editing config.yml.
func applyEnvOverrides(cfg *AppConfig) {
	_ = godotenv.Load()
	if v := os.Getenv("ROKI_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("ROKI_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if os.Getenv("ROKI_DEBUG") == "YES" {
		cfg.Debug = true
	}
}
