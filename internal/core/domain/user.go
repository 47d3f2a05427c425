package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an API caller allowed to query click counts.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// AuthToken is an issued API token. Only the digest of the token value
// is ever persisted.
type AuthToken struct {
	Digest    string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is no longer valid at now.
func (t AuthToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
