package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port"
)

// AuthUseCase issues opaque API tokens for users and resolves them back.
// Tokens are random UUIDs; only their SHA-256 digest is stored.
type AuthUseCase struct {
	users  port.UserRepository
	cache  port.TokenCache
	logger *slog.Logger

	tokenTTL time.Duration
	cacheTTL time.Duration
	now      func() time.Time
}

// NewAuthUseCase wires the user store and token cache. cache may be nil.
func NewAuthUseCase(users port.UserRepository, cache port.TokenCache, tokenTTL, cacheTTL time.Duration, logger *slog.Logger) *AuthUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthUseCase{
		users:    users,
		cache:    cache,
		logger:   logger,
		tokenTTL: tokenTTL,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// CreateUser hashes password with bcrypt and stores a new user.
func (u *AuthUseCase) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Err: errors.New("must not be empty")}
	}
	if password == "" {
		return nil, &domain.ValidationError{Field: "password", Err: errors.New("must not be empty")}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    u.now().UTC(),
	}
	if err = u.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a new token valid for the
// configured TTL.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := u.users.FindUserByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, domain.ErrUnauthorized
	}
	if err = bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", time.Time{}, domain.ErrUnauthorized
	}

	token := uuid.NewString()
	now := u.now().UTC()
	issued := domain.AuthToken{
		Digest:    digest(token),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.tokenTTL),
	}
	if err = u.users.CreateToken(ctx, issued); err != nil {
		return "", time.Time{}, err
	}
	return token, issued.ExpiresAt, nil
}

// Authenticate resolves token to its user, consulting the cache first.
// Cache failures are logged and fall through to the store.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	d := digest(token)

	if u.cache != nil {
		user, err := u.cache.Get(ctx, d)
		if err != nil {
			u.logger.Warn("token cache get", slog.Any("error", err))
		} else if user != nil {
			return user, nil
		}
	}

	now := u.now()
	user, issued, err := u.users.FindUserByToken(ctx, d, now)
	if err != nil {
		return nil, err
	}
	if user == nil || issued == nil || issued.Expired(now) {
		return nil, domain.ErrUnauthorized
	}

	if u.cache != nil && u.cacheTTL > 0 {
		// never cache past the token's own expiry
		ttl := min(u.cacheTTL, issued.ExpiresAt.Sub(now))
		if err = u.cache.Set(ctx, d, user, ttl); err != nil {
			u.logger.Warn("token cache set", slog.Any("error", err))
		}
	}
	return user, nil
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
