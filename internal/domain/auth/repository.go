package auth

import (
	"context"
	"errors"
	"time"
)

// ErrEmailExists is returned by Create when the address is already taken.
var ErrEmailExists = errors.New("email already exists")

// Repository abstracts user persistence.
type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
}

// RevocationStore remembers token IDs that must no longer be accepted.
// Entries only need to outlive the token they revoke.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
