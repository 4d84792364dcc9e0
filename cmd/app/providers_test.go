package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/config"
	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/notearchive"
)

func TestProvideNoteArchive(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		archive config.ArchiveConfig
		wantS3  bool
	}{
		{name: "disabled", archive: config.ArchiveConfig{Endpoint: "http://localhost:9000", Bucket: "smartnotes"}},
		{name: "enabled without endpoint", archive: config.ArchiveConfig{Enabled: true, Bucket: "smartnotes"}},
		{name: "enabled without bucket", archive: config.ArchiveConfig{Enabled: true, Endpoint: "http://localhost:9000"}},
		{name: "enabled", archive: config.ArchiveConfig{Enabled: true, Endpoint: "http://localhost:9000", Bucket: "smartnotes", Region: "auto"}, wantS3: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := provideNoteArchive(&config.Config{Archive: tt.archive}, logger)
			if !tt.wantS3 {
				require.Nil(t, got)
				return
			}
			_, ok := got.(*notearchive.S3Archive)
			require.True(t, ok)
		})
	}
}
