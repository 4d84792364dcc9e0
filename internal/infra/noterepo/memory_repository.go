package noterepo

import (
	"context"
	"sort"
	"sync"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/notes"
)

// MemoryRepository keeps notes in process memory for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[int64][]notes.Note
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[int64][]notes.Note)}
}

// Create stores a copy of the note.
func (r *MemoryRepository) Create(_ context.Context, note notes.Note) (notes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.Takeaways = cloneTakeaways(note.Takeaways)
	r.byUser[note.UserID] = append(r.byUser[note.UserID], note)
	return note, nil
}

// ListByUser returns copies ordered newest first; equal timestamps keep the later insert first.
func (r *MemoryRepository) ListByUser(_ context.Context, userID int64) ([]notes.Note, error) {
	r.mu.RLock()
	stored := r.byUser[userID]
	out := make([]notes.Note, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		n := stored[i]
		n.Takeaways = cloneTakeaways(n.Takeaways)
		out = append(out, n)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneTakeaways(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

var _ notes.Repository = (*MemoryRepository)(nil)
