package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/notes"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/summarizer"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/metrics"
)

const rootMessage = "AI Notes Beautifier & Summarizer Backend is running."

// Handler wires the HTTP transport to domain services.
type Handler struct {
	summarizerSvc summarizer.Service
	notesSvc      notes.Service
	authSvc       auth.Service
	recorder      *metrics.Recorder
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(summarizerSvc summarizer.Service, notesSvc notes.Service, authSvc auth.Service, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		summarizerSvc: summarizerSvc,
		notesSvc:      notesSvc,
		authSvc:       authSvc,
		recorder:      recorder,
		logger:        logger.With("component", "http.handler"),
	}
}

// Root reports that the service is up.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": rootMessage})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Beautify reformats raw notes.
func (h *Handler) Beautify(c *gin.Context) {
	var req summarizer.BeautifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_input", "No content provided", err))
		return
	}

	resp, err := h.summarizerSvc.Beautify(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summarize produces a summary and its takeaways.
func (h *Handler) Summarize(c *gin.Context) {
	var req summarizer.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_input", "No text provided", err))
		return
	}

	result, err := h.summarizerSvc.Summarize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// SaveNote persists a processed note for the caller.
func (h *Handler) SaveNote(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req notes.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_input", "Missing required note fields.", err))
		return
	}

	note, err := h.notesSvc.Save(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": note})
}

// ListNotes returns the caller's notes, newest first.
func (h *Handler) ListNotes(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	items, err := h.notesSvc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}
