package notes

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ashiskumarwork/SmartNotesAI-backend/pkg/errors"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/util"
)

const archiveTimeout = 10 * time.Second

// Service saves and lists notes for authenticated users.
type Service interface {
	Save(ctx context.Context, userID int64, req SaveRequest) (Note, error)
	List(ctx context.Context, userID int64) ([]Note, error)
}

type service struct {
	repo    Repository
	archive Archive
	now     util.Clock
	logger  *slog.Logger
}

// NewService wires the notes domain. archive may be nil.
func NewService(repo Repository, archive Archive, logger *slog.Logger) Service {
	return &service{
		repo:    repo,
		archive: archive,
		now:     util.NowUTC,
		logger:  logger.With("component", "notes.service"),
	}
}

func (s *service) Save(ctx context.Context, userID int64, req SaveRequest) (Note, error) {
	if blank(req.RawText) || blank(req.BeautifiedText) || blank(req.SummaryText) || req.Takeaways == nil {
		return Note{}, apperrors.Wrap("invalid_input", "Missing required note fields.", nil)
	}
	note := Note{
		ID:             uuid.New(),
		UserID:         userID,
		RawText:        req.RawText,
		BeautifiedText: req.BeautifiedText,
		SummaryText:    req.SummaryText,
		Takeaways:      append([]string{}, req.Takeaways...),
		CreatedAt:      s.now(),
	}
	saved, err := s.repo.Create(ctx, note)
	if err != nil {
		s.logger.Error("save note failed", "user_id", userID, "error", err)
		return Note{}, apperrors.Wrap("notes_error", "Failed to save note. Please try again.", err)
	}
	s.archiveNote(ctx, saved)
	return saved, nil
}

func (s *service) List(ctx context.Context, userID int64) ([]Note, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list notes failed", "user_id", userID, "error", err)
		return nil, apperrors.Wrap("notes_error", "Failed to fetch notes. Please try again.", err)
	}
	if items == nil {
		items = []Note{}
	}
	return items, nil
}

// archiveNote is best effort: failures are logged and never reach the caller.
func (s *service) archiveNote(ctx context.Context, note Note) {
	if s.archive == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()
	key := ArchiveKey(note)
	if err := s.archive.Put(ctx, key, RenderMarkdown(note), markdownContentType); err != nil {
		s.logger.Warn("archive note failed", "key", key, "error", err)
		return
	}
	s.logger.Debug("note archived", "key", key)
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
