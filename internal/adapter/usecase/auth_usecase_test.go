package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{ID: uuid.New(), Username: "user", PasswordHash: hash}
}

func TestLoginIssuesToken(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	user := testUser(t, "pass")
	now := time.Date(2021, 11, 7, 3, 0, 0, 0, time.UTC)

	var stored domain.AuthToken
	users.EXPECT().FindUserByUsername(mock.Anything, "user").Return(user, nil)
	users.EXPECT().
		CreateToken(mock.Anything, mock.AnythingOfType("domain.AuthToken")).
		Run(func(ctx context.Context, token domain.AuthToken) { stored = token }).
		Return(nil)

	svc := NewAuthUseCase(users, nil, 10*time.Hour, 0, nil)
	svc.now = func() time.Time { return now }

	token, expiry, err := svc.Login(context.Background(), "user", "pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(10*time.Hour), expiry)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, digest(token), stored.Digest)
	assert.NotEqual(t, token, stored.Digest)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	users.EXPECT().FindUserByUsername(mock.Anything, "user").Return(testUser(t, "pass"), nil)
	users.EXPECT().FindUserByUsername(mock.Anything, "ghost").Return(nil, nil)

	svc := NewAuthUseCase(users, nil, time.Hour, 0, nil)

	_, _, err := svc.Login(context.Background(), "user", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = svc.Login(context.Background(), "ghost", "pass")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticateEmptyToken(t *testing.T) {
	svc := NewAuthUseCase(mocks.NewMockUserRepository(t), nil, time.Hour, 0, nil)
	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticateFromStoreFillsCache(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	cache := mocks.NewMockTokenCache(t)
	user := &domain.User{ID: uuid.New(), Username: "user"}
	now := time.Date(2021, 11, 7, 3, 0, 0, 0, time.UTC)
	issued := &domain.AuthToken{Digest: digest("tok"), UserID: user.ID, ExpiresAt: now.Add(time.Minute)}

	cache.EXPECT().Get(mock.Anything, digest("tok")).Return(nil, nil)
	users.EXPECT().FindUserByToken(mock.Anything, digest("tok"), now).Return(user, issued, nil)
	// TTL is capped at the token's remaining lifetime
	cache.EXPECT().Set(mock.Anything, digest("tok"), user, time.Minute).Return(nil)

	svc := NewAuthUseCase(users, cache, time.Hour, 5*time.Minute, nil)
	svc.now = func() time.Time { return now }

	got, err := svc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthenticateCacheHit(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	cache := mocks.NewMockTokenCache(t)
	user := &domain.User{ID: uuid.New(), Username: "user"}

	cache.EXPECT().Get(mock.Anything, digest("tok")).Return(user, nil)

	got, err := NewAuthUseCase(users, cache, time.Hour, time.Minute, nil).Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthenticateCacheErrorFallsBack(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	cache := mocks.NewMockTokenCache(t)
	user := &domain.User{ID: uuid.New(), Username: "user"}

	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))
	users.EXPECT().
		FindUserByToken(mock.Anything, digest("tok"), mock.Anything).
		Return(user, &domain.AuthToken{ExpiresAt: time.Now().Add(time.Hour)}, nil)

	// cacheTTL of zero disables writes
	got, err := NewAuthUseCase(users, cache, time.Hour, 0, nil).Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthenticateUnknownOrExpired(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	now := time.Date(2021, 11, 7, 3, 0, 0, 0, time.UTC)
	user := &domain.User{ID: uuid.New()}

	users.EXPECT().FindUserByToken(mock.Anything, digest("unknown"), now).Return(nil, nil, nil)
	users.EXPECT().
		FindUserByToken(mock.Anything, digest("expired"), now).
		Return(user, &domain.AuthToken{ExpiresAt: now}, nil)

	svc := NewAuthUseCase(users, nil, time.Hour, 0, nil)
	svc.now = func() time.Time { return now }

	_, err := svc.Authenticate(context.Background(), "unknown")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Authenticate(context.Background(), "expired")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateUserHashesPassword(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	users.EXPECT().CreateUser(mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := NewAuthUseCase(users, nil, time.Hour, 0, nil).CreateUser(context.Background(), " user ", "pass")
	require.NoError(t, err)
	assert.Equal(t, "user", user.Username)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("pass")))
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewAuthUseCase(mocks.NewMockUserRepository(t), nil, time.Hour, 0, nil)

	_, err := svc.CreateUser(context.Background(), "", "pass")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateUser(context.Background(), "user", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
