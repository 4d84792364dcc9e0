package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 12*time.Second, cfg.LLM.Timeout)
	require.Equal(t, 1200*time.Millisecond, cfg.LLM.RetryDelay)
	require.Equal(t, float32(0.4), cfg.LLM.Temperature)
	require.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	require.Contains(t, cfg.Notes.SummarizePrompt, "Key Takeaways:")
	require.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9000"
llm:
  model: file-model
  timeout: 5s
  retryDelay: 100ms
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "7070")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("FRONTEND_URL", "https://a.example, https://b.example")
	t.Setenv("VALKEY_ENABLED", "true")
	t.Setenv("VALKEY_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, "file-model", cfg.LLM.Model)
	require.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	require.Equal(t, 100*time.Millisecond, cfg.LLM.RetryDelay)
	require.Equal(t, "sk-or-test", cfg.LLM.APIKey)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.True(t, cfg.Valkey.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "write timeout shorter than retry budget",
			mutate:  func(c *Config) { c.HTTP.WriteTimeout = 10 * time.Second },
			wantErr: "http.writeTimeout must cover two llm attempts plus the retry delay",
		},
		{
			name:    "missing timeout",
			mutate:  func(c *Config) { c.LLM.Timeout = 0 },
			wantErr: "llm.timeout must be positive",
		},
		{
			name:    "empty secret",
			mutate:  func(c *Config) { c.Auth.Secret = " " },
			wantErr: "auth.secret cannot be empty",
		},
		{
			name:    "valkey without addr",
			mutate:  func(c *Config) { c.Valkey.Enabled = true },
			wantErr: "valkey.addr cannot be empty when valkey is enabled",
		},
		{
			name:    "archive without endpoint",
			mutate:  func(c *Config) { c.Archive.Enabled = true },
			wantErr: "archive.endpoint cannot be empty when archive is enabled",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	require.Empty(t, splitList(" , "))
}
