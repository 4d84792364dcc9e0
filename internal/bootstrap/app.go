package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/config"
)

const shutdownTimeout = 45 * time.Second

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server}
}

// Run listens on the configured address and blocks until ctx is done or the server fails.
func (a *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, listener)
}

// Serve runs the server on listener. In-flight requests, including a summarize
// waiting on its retry, get shutdownTimeout to finish.
func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting",
			"address", listener.Addr().String(),
			"model", a.cfg.LLM.Model,
			"llm_timeout_ms", a.cfg.LLM.Timeout.Milliseconds(),
			"retry_delay_ms", a.cfg.LLM.RetryDelay.Milliseconds(),
		)
		errCh <- a.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		a.logger.Info("http server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
