package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 500, cfg.MaxInputLength)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Empty(t, cfg.Path)
	assert.Empty(t, cfg.EmojiPath)
	assert.Empty(t, cfg.OverlayPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SENTIMENT_HOST", "127.0.0.1")
	t.Setenv("SENTIMENT_PORT", "9090")
	t.Setenv("SENTIMENT_PUBLIC_URL", "https://sentiment.example.com")
	t.Setenv("SENTIMENT_MAX_INPUT_LENGTH", "1000")
	t.Setenv("SENTIMENT_LEXICON_PATH", "/data/full_lexicon.txt")
	t.Setenv("SENTIMENT_LEXICON_OVERLAY", "/data/overlay.yaml")
	t.Setenv("SENTIMENT_LOG_LEVEL", "debug")
	t.Setenv("SENTIMENT_LOG_FORMAT", "json")
	t.Setenv("SENTIMENT_GIN_MODE", "debug")
	t.Setenv("SENTIMENT_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, "https://sentiment.example.com", cfg.BaseURL())
	assert.Equal(t, 1000, cfg.MaxInputLength)
	assert.Equal(t, "/data/full_lexicon.txt", cfg.Path)
	assert.Equal(t, "/data/overlay.yaml", cfg.OverlayPath)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not a number", "SENTIMENT_PORT", "http"},
		{"port out of range", "SENTIMENT_PORT", "70000"},
		{"max input length zero", "SENTIMENT_MAX_INPUT_LENGTH", "0"},
		{"unknown gin mode", "SENTIMENT_GIN_MODE", "production"},
		{"unknown log level", "SENTIMENT_LOG_LEVEL", "trace"},
		{"unknown log format", "SENTIMENT_LOG_FORMAT", "xml"},
		{"negative timeout", "SENTIMENT_READ_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestBaseURL(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())

	cfg.Host = "10.0.0.5"
	assert.Equal(t, "http://10.0.0.5:8080", cfg.BaseURL())

	cfg.PublicURL = "https://api.example.com"
	assert.Equal(t, "https://api.example.com", cfg.BaseURL())
}
