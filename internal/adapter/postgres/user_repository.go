package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port"
)

// UserRepository implements port.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ port.UserRepository = (*UserRepository)(nil)

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateUser inserts a user.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1,$2,$3,$4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	return err
}

// FindUserByUsername returns a user by username.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateToken inserts an issued token digest.
func (r *UserRepository) CreateToken(ctx context.Context, token domain.AuthToken) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO auth_tokens (digest, user_id, created_at, expires_at) VALUES ($1,$2,$3,$4)`,
		token.Digest, token.UserID, token.CreatedAt, token.ExpiresAt)
	return err
}

// FindUserByToken returns the owner of digest if the token is still
// valid at now.
func (r *UserRepository) FindUserByToken(ctx context.Context, digest string, now time.Time) (*domain.User, *domain.AuthToken, error) {
	var (
		u domain.User
		t domain.AuthToken
	)
	err := r.pool.QueryRow(ctx, `
        SELECT u.id, u.username, u.password_hash, u.created_at,
               t.digest, t.user_id, t.created_at, t.expires_at
        FROM auth_tokens t
        JOIN users u ON u.id = t.user_id
        WHERE t.digest = $1 AND t.expires_at > $2`, digest, now).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
			&t.Digest, &t.UserID, &t.CreatedAt, &t.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &u, &t, nil
}
