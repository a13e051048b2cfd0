package infra

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	// Hypixel
	HypixelAPIKey     string `env:"HYPIXEL_API_KEY"`
	HypixelBaseURL    string `env:"HYPIXEL_API_URL" envDefault:"https://api.hypixel.net" validate:"required,url"`
	HypixelKeyInQuery bool   `env:"HYPIXEL_KEY_IN_QUERY" envDefault:"false"`

	// Mojang
	MojangBaseURL string `env:"MOJANG_API_URL" envDefault:"https://api.mojang.com" validate:"required,url"`

	// HTTP
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// Logging
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Debug     bool   `env:"DEBUG" envDefault:"false"`
}

// LoadConfig parses environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	return loadConfig(env.Options{})
}

// LoadConfigFrom parses the given variables instead of the process environment.
func LoadConfigFrom(environ map[string]string) (*Config, error) {
	return loadConfig(env.Options{Environment: environ})
}

func loadConfig(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
