package configs

import "time"

// Auth configures API token issuance.
type Auth struct {
	// TokenTTL is the lifetime of a token issued by /auth/login/.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"10h"`
}
