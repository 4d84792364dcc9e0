package noterepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/notes"
)

// PostgresRepository persists notes in Postgres. Takeaways are stored as text[].
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts the note and returns the stored row.
func (r *PostgresRepository) Create(ctx context.Context, note notes.Note) (notes.Note, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notes (id, user_id, raw_text, beautified_text, summary_text, takeaways, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, raw_text, beautified_text, summary_text, takeaways, created_at
	`, note.ID, note.UserID, note.RawText, note.BeautifiedText, note.SummaryText, note.Takeaways, note.CreatedAt)
	saved, err := scanNote(row)
	if err != nil {
		return notes.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return saved, nil
}

// ListByUser returns the user's notes ordered by created_at descending.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]notes.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, raw_text, beautified_text, summary_text, takeaways, created_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	out := make([]notes.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		out = append(out, note)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (notes.Note, error) {
	var (
		note    notes.Note
		created time.Time
	)
	if err := row.Scan(&note.ID, &note.UserID, &note.RawText, &note.BeautifiedText, &note.SummaryText, &note.Takeaways, &created); err != nil {
		return notes.Note{}, err
	}
	if note.Takeaways == nil {
		note.Takeaways = []string{}
	}
	note.CreatedAt = created.UTC()
	return note, nil
}

var _ notes.Repository = (*PostgresRepository)(nil)
