package port

//go:generate mockery --name=UserRepository --output=./mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=TokenCache --output=./mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=AuthUseCase --output=./mocks --outpkg=mocks --with-expecter

import (
	"context"
	"time"

	"click-logs/internal/core/domain"
)

// UserRepository persists API users and their tokens.
type UserRepository interface {
	// CreateUser stores a new user.
	CreateUser(ctx context.Context, user *domain.User) error
	// FindUserByUsername returns nil, nil when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateToken stores an issued token digest.
	CreateToken(ctx context.Context, token domain.AuthToken) error
	// FindUserByToken returns the owner of a non-expired token digest,
	// or nil, nil when the digest is unknown or expired at now.
	FindUserByToken(ctx context.Context, digest string, now time.Time) (*domain.User, *domain.AuthToken, error)
}

// TokenCache keeps recently authenticated token digests. Misses are
// reported as nil, nil.
type TokenCache interface {
	Get(ctx context.Context, digest string) (*domain.User, error)
	Set(ctx context.Context, digest string, user *domain.User, ttl time.Duration) error
}

// AuthUseCase issues and verifies API tokens.
type AuthUseCase interface {
	// CreateUser registers username with password.
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a fresh token value and its
	// expiry. Bad credentials yield domain.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
	// Authenticate resolves a token value to its user. Unknown or
	// expired tokens yield domain.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
