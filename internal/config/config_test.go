package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DIFY_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("SESSION_STORE", "memory")

	cfg := Load()

	assert.Equal(t, 90*time.Second, cfg.Dify.Timeout)
	assert.Equal(t, "memory", cfg.Storage.SessionStore)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DIFY_CHAT_URL", "http://dify.local/v1/chat-messages")
	t.Setenv("SHEET_TIMEOUT_SECONDS", "3")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "http://dify.local/v1/chat-messages", cfg.Dify.ChatURL)
	assert.Equal(t, 3*time.Second, cfg.Sheet.Timeout)
	assert.True(t, cfg.IsProduction())
}
