package notearchive

import (
	"context"
	"sort"
	"sync"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/notes"
)

// MemoryArchive keeps archived objects in memory. Used when no bucket is configured in dev.
type MemoryArchive struct {
	mu      sync.RWMutex
	objects map[string]Object
}

// Object is one archived blob.
type Object struct {
	Body        []byte
	ContentType string
}

// NewMemoryArchive constructs an empty archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{objects: make(map[string]Object)}
}

// Put stores a copy of body.
func (a *MemoryArchive) Put(_ context.Context, key string, body []byte, contentType string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[key] = Object{Body: append([]byte(nil), body...), ContentType: contentType}
	return nil
}

// Get returns the object stored under key.
func (a *MemoryArchive) Get(key string) (Object, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	obj, ok := a.objects[key]
	return obj, ok
}

// Keys lists stored keys in lexical order.
func (a *MemoryArchive) Keys() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	keys := make([]string, 0, len(a.objects))
	for k := range a.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ notes.Archive = (*MemoryArchive)(nil)
