package configs

import "time"

// Redis configures the optional token cache. An empty Addr disables it.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// TokenTTL bounds how long an authenticated token stays cached.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"5m"`
}
