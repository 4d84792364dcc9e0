package notes

import "context"

// Repository persists notes.
type Repository interface {
	Create(ctx context.Context, note Note) (Note, error)
	// ListByUser returns the user's notes, newest first.
	ListByUser(ctx context.Context, userID int64) ([]Note, error)
}

// Archive is an object store for rendered copies of saved notes.
type Archive interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}
