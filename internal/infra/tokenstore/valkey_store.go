package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
)

// ValkeyStore keeps revoked token IDs as expiring keys in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "smartnotes"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Revoke writes the revocation key with an expiry of ttl, rounded up to one second.
func (s *ValkeyStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	cmd := s.client.B().Set().Key(s.revokedKey(tokenID)).Value("1").Ex(ttl).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked checks for the revocation key.
func (s *ValkeyStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Do(ctx, s.client.B().Exists().Key(s.revokedKey(tokenID)).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

func (s *ValkeyStore) revokedKey(tokenID string) string {
	return fmt.Sprintf("%s:revoked:%s", s.prefix, tokenID)
}

var _ auth.RevocationStore = (*ValkeyStore)(nil)
