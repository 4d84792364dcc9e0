package auth

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/ashiskumarwork/SmartNotesAI-backend/pkg/errors"
)

func TestService_RegisterLoginAndRefresh(t *testing.T) {
	svc := newTestService(newMemoryRepo(), newMemoryRevocations())

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "Ada@Example.com",
		Password: "pass1234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)
	require.Equal(t, "ada@example.com", registered.User.Email)
	require.Equal(t, "Ada Lovelace", registered.User.Name)
	require.NotZero(t, registered.User.ID)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    " ADA@example.com ",
		Password: "pass1234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, registered.User.ID, resp.User.ID)

	claims, err := svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, claims.UserID)
	require.NotEmpty(t, claims.TokenID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)

	refreshed, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, resp.Token, refreshed.Token)
	require.Equal(t, "Ada Lovelace", refreshed.User.Name)

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	require.True(t, apperrors.IsCode(err, "invalid_token"), "refresh tokens are single use")

	profile, err := svc.Profile(context.Background(), claims.UserID)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", profile.Email)
}

func TestService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		code    string
		message string
	}{
		{name: "missing name", req: RegisterRequest{Email: "a@b.com", Password: "pass1234"}, code: "invalid_input", message: "All fields are required."},
		{name: "missing email", req: RegisterRequest{Name: "A", Password: "pass1234"}, code: "invalid_input", message: "All fields are required."},
		{name: "missing password", req: RegisterRequest{Name: "A", Email: "a@b.com"}, code: "invalid_input", message: "All fields are required."},
		{name: "bad email", req: RegisterRequest{Name: "A", Email: "not-an-email", Password: "pass1234"}, code: "invalid_input"},
		{name: "short password", req: RegisterRequest{Name: "A", Email: "a@b.com", Password: "short"}, code: "invalid_input"},
		{name: "password over bcrypt limit", req: RegisterRequest{Name: "A", Email: "a@b.com", Password: strings.Repeat("p", 73)}, code: "invalid_input", message: "password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(newMemoryRepo(), nil)
			_, err := svc.Register(context.Background(), tt.req)
			require.Error(t, err)
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			require.Equal(t, tt.code, appErr.Code)
			if tt.message != "" {
				require.Equal(t, tt.message, appErr.Message)
			}
		})
	}
}

func TestService_DuplicateEmail(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil)

	_, err := svc.Register(context.Background(), RegisterRequest{Name: "One", Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{Name: "Two", Email: "USER@example.com", Password: "pass12345"})
	require.True(t, apperrors.IsCode(err, "email_exists"))
	require.Contains(t, err.Error(), "Email already registered.")
}

func TestService_LoginFailures(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil)
	_, err := svc.Register(context.Background(), RegisterRequest{Name: "User", Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "user@example.com", Password: "wrongpass"})
	require.True(t, apperrors.IsCode(err, "invalid_credentials"))

	_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "pass1234"})
	require.True(t, apperrors.IsCode(err, "invalid_credentials"))

	_, err = svc.Login(context.Background(), LoginRequest{Email: "user@example.com"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestService_LogoutRevokesAccessToken(t *testing.T) {
	revocations := newMemoryRevocations()
	svc := newTestService(newMemoryRepo(), revocations)

	resp, err := svc.Register(context.Background(), RegisterRequest{Name: "User", Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	ttl, ok := revocations.ttl(claims.TokenID)
	require.True(t, ok)
	require.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 60)

	_, err = svc.ValidateToken(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestService_ValidateTokenRejects(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil)
	resp, err := svc.Register(context.Background(), RegisterRequest{Name: "User", Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)

	other := NewService(Config{Secret: "other-secret", TokenTTL: time.Hour, RefreshTokenTTL: time.Hour}, newMemoryRepo(), nil, newTestLogger())

	tests := []struct {
		name  string
		svc   Service
		token string
	}{
		{name: "empty", svc: svc, token: "  "},
		{name: "garbage", svc: svc, token: "not.a.jwt"},
		{name: "refresh used as access", svc: svc, token: resp.RefreshToken},
		{name: "wrong secret", svc: other, token: resp.Token},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.svc.ValidateToken(context.Background(), tt.token)
			require.True(t, apperrors.IsCode(err, "invalid_token"))
		})
	}
}

func TestService_ExpiredToken(t *testing.T) {
	svc := NewService(Config{Secret: "test-secret", TokenTTL: -time.Minute, RefreshTokenTTL: time.Hour}, newMemoryRepo(), nil, newTestLogger())
	resp, err := svc.Register(context.Background(), RegisterRequest{Name: "User", Email: "user@example.com", Password: "pass1234"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestService_ProfileNotFound(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil)
	_, err := svc.Profile(context.Background(), 42)
	require.True(t, apperrors.IsCode(err, "user_not_found"))
}

func newTestService(repo Repository, revoked RevocationStore) Service {
	return NewService(Config{
		Secret:          "test-secret",
		TokenTTL:        time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}, repo, revoked, newTestLogger())
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type memoryRepo struct {
	mu    sync.Mutex
	users map[int64]User
	seq   int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[int64]User)}
}

func (m *memoryRepo) Create(_ context.Context, name, email, passwordHash string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return User{}, ErrEmailExists
		}
	}
	m.seq++
	user := User{
		ID:           m.seq,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return User{}, false, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	return user, ok, nil
}

type memoryRevocations struct {
	mu      sync.Mutex
	entries map[string]time.Duration
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{entries: make(map[string]time.Duration)}
}

func (m *memoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[tokenID] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[tokenID]
	return ok, nil
}

func (m *memoryRevocations) ttl(tokenID string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ttl, ok := m.entries[tokenID]
	return ttl, ok
}
