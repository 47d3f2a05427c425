package config

import (
	"errors"
	"io/fs"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"click-logs/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the token cache (REDIS_).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Auth configures token issuance (AUTH_).
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Clicks configures the count endpoint (CLICKS_).
	Clicks configs.Clicks `envPrefix:"CLICKS_"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment into a Config. Variables already set in the
// environment win over the file. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Clicks.Location(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
