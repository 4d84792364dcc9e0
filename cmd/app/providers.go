package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/notes"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/summarizer"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/config"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/llm/chatgpt"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/notearchive"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/noterepo"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/tokenstore"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/userrepo"
	"github.com/ashiskumarwork/SmartNotesAI-backend/migrations"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/metrics"
)

func provideSummarizerConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		BeautifyPrompt:  cfg.Notes.BeautifyPrompt,
		SummarizePrompt: cfg.Notes.SummarizePrompt,
		Timeout:         cfg.LLM.Timeout,
		RetryDelay:      cfg.LLM.RetryDelay,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideTokenCounter(cfg *config.Config, logger *slog.Logger) metrics.TokenCounter {
	return metrics.NewTiktokenCounter(cfg.LLM.Model, logger)
}

// providePostgresPool returns a nil pool when Postgres is not configured or unreachable;
// repositories then fall back to memory.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, func()) {
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil, noop
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil, noop
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		logger.Error("postgres migration failed, using memory repositories", "error", err)
		pool.Close()
		return nil, noop
	}
	logger.Info("postgres repositories enabled")
	return pool, pool.Close
}

func provideAuthRepository(pool *pgxpool.Pool) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideNoteRepository(pool *pgxpool.Pool) notes.Repository {
	if pool == nil {
		return noterepo.NewMemoryRepository()
	}
	return noterepo.NewPostgresRepository(pool)
}

func provideRevocationStore(cfg *config.Config, logger *slog.Logger) (auth.RevocationStore, func()) {
	noop := func() {}
	if !cfg.Valkey.Enabled {
		return tokenstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return tokenstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return tokenstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return tokenstore.NewMemoryStore(), noop
	}
	logger.Info("valkey revocation store enabled", "addr", cfg.Valkey.Addr)
	return tokenstore.NewValkeyStore(client, "smartnotes"), client.Close
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Valkey.Addr, "://") {
		return valkey.ParseURL(cfg.Valkey.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}, nil
}

// provideNoteArchive returns nil when archiving is disabled or the S3 client cannot be built,
// which the notes service treats as a no-op.
func provideNoteArchive(cfg *config.Config, logger *slog.Logger) notes.Archive {
	if !cfg.Archive.Enabled {
		logger.Info("note archive disabled")
		return nil
	}
	archive, err := notearchive.NewS3Archive(
		cfg.Archive.Endpoint,
		cfg.Archive.AccessKey,
		cfg.Archive.SecretKey,
		cfg.Archive.Bucket,
		cfg.Archive.Region,
		logger,
	)
	if err != nil {
		logger.Error("failed to initialize note archive, archiving disabled", "error", err)
		return nil
	}
	logger.Info("s3 note archive enabled", "bucket", cfg.Archive.Bucket)
	return archive
}
