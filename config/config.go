// Package config handles loading and validation of host runtime configuration
// from environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/hostframe/weather-plugin/forecast"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
}

// PluginConfig holds settings handed to plugin modules at construction.
type PluginConfig struct {
	// SeedForecastDays is how many forecasts the weather module seeds into
	// its local list during Initialize.
	SeedForecastDays int `mapstructure:"SEED_FORECAST_DAYS"`
}

// Config is the root configuration object.
type Config struct {
	Server   ServerConfig `mapstructure:"SERVER"`
	Plugin   PluginConfig `mapstructure:"PLUGIN"`
	LogLevel string       `mapstructure:"LOG_LEVEL"`
}

// bindEnvVars binds viper keys to environment variable names, collecting the
// first binding error.
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[1], err)
		}
	}
	return nil
}

// LoadConfig reads configuration from the environment, applies defaults, and
// validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("PLUGIN.SEED_FORECAST_DAYS", 5)
	v.SetDefault("LOG_LEVEL", "info")

	if err := bindEnvVars(v, [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"PLUGIN.SEED_FORECAST_DAYS", "SEED_FORECAST_DAYS"},
		{"LOG_LEVEL", "LOG_LEVEL"},
	}); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Environment != EnvDevelopment && c.Server.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s", c.Server.Environment)
	}
	if c.Plugin.SeedForecastDays < 1 || c.Plugin.SeedForecastDays > forecast.MaxDays {
		return fmt.Errorf("SEED_FORECAST_DAYS must be in [1, %d], got %d",
			forecast.MaxDays, c.Plugin.SeedForecastDays)
	}
	return nil
}
