package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/util"
)

// MemoryStore tracks revoked token IDs in process memory. Expired entries are pruned on write.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     util.Clock
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time), now: util.NowUTC}
}

// Revoke marks tokenID as revoked for ttl.
func (s *MemoryStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, until := range s.entries {
		if !until.After(now) {
			delete(s.entries, id)
		}
	}
	s.entries[tokenID] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether tokenID is currently revoked.
func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(s.now()) {
		delete(s.entries, tokenID)
		return false, nil
	}
	return true, nil
}

var _ auth.RevocationStore = (*MemoryStore)(nil)
