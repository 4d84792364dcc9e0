//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/bootstrap"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/notes"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/summarizer"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/config"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/llm/chatgpt"
	httpiface "github.com/ashiskumarwork/SmartNotesAI-backend/internal/interface/http"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/logger"
	"github.com/ashiskumarwork/SmartNotesAI-backend/pkg/metrics"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.NewRecorder,
		provideSummarizerConfig,
		provideAuthConfig,
		provideChatGPTClient,
		provideTokenCounter,
		providePostgresPool,
		provideAuthRepository,
		provideNoteRepository,
		provideRevocationStore,
		provideNoteArchive,
		summarizer.NewService,
		notes.NewService,
		auth.NewService,
		wire.Bind(new(summarizer.ChatClient), new(*chatgpt.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
