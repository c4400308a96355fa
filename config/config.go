package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"weather-dashboard"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	Port       string `envconfig:"PORT" default:"8080"`
	OpsPort    string `envconfig:"OPS_PORT" default:"9091"`
	SentryDSN  string `envconfig:"SENTRY_DSN"`

	Weather WeatherConfig `yaml:"weather"`
}

// WeatherConfig holds the archive provider settings and the dashboard
// defaults used when a request omits parameters.
type WeatherConfig struct {
	BaseURL          string  `yaml:"base_url"`
	TimeoutSeconds   int     `yaml:"timeout_seconds"`
	DefaultLat       float64 `yaml:"default_lat"`
	DefaultLon       float64 `yaml:"default_lon"`
	DefaultRangeDays int     `yaml:"default_range_days"`
}

// Timeout returns the outbound HTTP client timeout.
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// NewConfig loads config/config.yaml if present, then applies environment
// variable overrides.
func NewConfig() (*Config, error) {
	return NewConfigFromFile(defaultConfigPath)
}

// NewConfigFromFile loads the given YAML file if present, then applies
// environment variable overrides. A missing file is not an error; defaults
// still apply.
func NewConfigFromFile(path string) (*Config, error) {
	var cnf Config

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	cnf.Weather.applyDefaults()

	return &cnf, nil
}

func (w *WeatherConfig) applyDefaults() {
	if w.BaseURL == "" {
		w.BaseURL = "https://archive-api.open-meteo.com/v1/archive"
	}
	if w.TimeoutSeconds <= 0 {
		w.TimeoutSeconds = 10
	}
	if w.DefaultLat == 0 && w.DefaultLon == 0 {
		w.DefaultLat = 9.0765
		w.DefaultLon = 7.3986
	}
	if w.DefaultRangeDays <= 0 {
		w.DefaultRangeDays = 6
	}
}

// IsDevelopment reports whether the app runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
