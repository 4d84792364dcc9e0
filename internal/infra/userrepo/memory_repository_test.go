package userrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, fixed, created.CreatedAt)

	_, err = repo.Create(ctx, "Other", "ada@example.com", "hash2")
	require.ErrorIs(t, err, auth.ErrEmailExists)

	byEmail, found, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, created, byEmail)

	byID, found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Ada", byID.Name)

	_, found, err = repo.GetByID(ctx, 99)
	require.NoError(t, err)
	require.False(t, found)
}
