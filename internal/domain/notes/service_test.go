package notes_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/notes"
	apperrors "github.com/ashiskumarwork/SmartNotesAI-backend/pkg/errors"
)

func TestService_SaveValidation(t *testing.T) {
	valid := notes.SaveRequest{
		RawText:        "raw",
		BeautifiedText: "pretty",
		SummaryText:    "summary",
		Takeaways:      []string{"one"},
	}

	tests := []struct {
		name    string
		mutate  func(r *notes.SaveRequest)
		wantErr bool
	}{
		{name: "complete", mutate: func(*notes.SaveRequest) {}},
		{name: "empty takeaways allowed", mutate: func(r *notes.SaveRequest) { r.Takeaways = []string{} }},
		{name: "missing takeaways", mutate: func(r *notes.SaveRequest) { r.Takeaways = nil }, wantErr: true},
		{name: "missing raw text", mutate: func(r *notes.SaveRequest) { r.RawText = "" }, wantErr: true},
		{name: "blank beautified", mutate: func(r *notes.SaveRequest) { r.BeautifiedText = "  " }, wantErr: true},
		{name: "missing summary", mutate: func(r *notes.SaveRequest) { r.SummaryText = "" }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &stubRepo{}
			svc := notes.NewService(repo, nil, newTestLogger())
			req := valid
			req.Takeaways = append([]string(nil), valid.Takeaways...)
			tt.mutate(&req)

			note, err := svc.Save(context.Background(), 7, req)
			if tt.wantErr {
				require.True(t, apperrors.IsCode(err, "invalid_input"))
				require.Contains(t, err.Error(), "Missing required note fields.")
				require.Empty(t, repo.saved)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(7), note.UserID)
			require.NotEmpty(t, note.ID.String())
			require.False(t, note.CreatedAt.IsZero())
			require.NotNil(t, note.Takeaways)
			require.Len(t, repo.saved, 1)
		})
	}
}

func TestService_SaveArchivesMarkdown(t *testing.T) {
	repo := &stubRepo{}
	archive := &stubArchive{}
	svc := notes.NewService(repo, archive, newTestLogger())

	note, err := svc.Save(context.Background(), 3, notes.SaveRequest{
		RawText:        "raw notes",
		BeautifiedText: "# Pretty",
		SummaryText:    "Short summary.",
		Takeaways:      []string{"A", "B"},
	})
	require.NoError(t, err)
	require.Len(t, archive.keys, 1)
	require.Equal(t, "notes/3/"+note.ID.String()+".md", archive.keys[0])
	require.Contains(t, string(archive.bodies[0]), "- A\n- B\n")
	require.Contains(t, string(archive.bodies[0]), "Short summary.")
}

func TestService_ArchiveFailureIsNotSurfaced(t *testing.T) {
	svc := notes.NewService(&stubRepo{}, &stubArchive{err: errors.New("bucket gone")}, newTestLogger())

	_, err := svc.Save(context.Background(), 1, notes.SaveRequest{
		RawText: "r", BeautifiedText: "b", SummaryText: "s", Takeaways: []string{},
	})
	require.NoError(t, err)
}

func TestService_RepositoryErrors(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}
	archive := &stubArchive{}
	svc := notes.NewService(repo, archive, newTestLogger())

	_, err := svc.Save(context.Background(), 1, notes.SaveRequest{
		RawText: "r", BeautifiedText: "b", SummaryText: "s", Takeaways: []string{"x"},
	})
	require.True(t, apperrors.IsCode(err, "notes_error"))
	require.Empty(t, archive.keys)

	_, err = svc.List(context.Background(), 1)
	require.True(t, apperrors.IsCode(err, "notes_error"))
}

func TestService_ListNeverNil(t *testing.T) {
	svc := notes.NewService(&stubRepo{}, nil, newTestLogger())
	items, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubRepo struct {
	mu    sync.Mutex
	saved []notes.Note
	err   error
}

func (r *stubRepo) Create(_ context.Context, note notes.Note) (notes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return notes.Note{}, r.err
	}
	r.saved = append(r.saved, note)
	return note, nil
}

func (r *stubRepo) ListByUser(_ context.Context, userID int64) ([]notes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []notes.Note
	for _, n := range r.saved {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

type stubArchive struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (a *stubArchive) Put(_ context.Context, key string, body []byte, _ string) error {
	if a.err != nil {
		return a.err
	}
	a.keys = append(a.keys, key)
	a.bodies = append(a.bodies, body)
	return nil
}
