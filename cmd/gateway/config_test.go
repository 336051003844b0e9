package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "gpt-4.1-mini", cfg.Agent.SupportModel)
	assert.Equal(t, "gpt-4.1-mini", cfg.Agent.VisionModel)
	assert.Equal(t, 1024, cfg.Agent.SupportMaxTokens)
	assert.Equal(t, 400, cfg.Agent.VisionMaxTokens)
	assert.Equal(t, 5, cfg.Agent.MaxToolRounds)
	assert.Equal(t, 3, cfg.Agent.RateBurst)
	assert.Equal(t, 60, cfg.Agent.CacheTTLMinutes)
	assert.Zero(t, cfg.Agent.RequestsPerMinute)
}

func TestLoadConfigValidatesProviderKeys(t *testing.T) {
	t.Run("openai model without key", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})
}

func TestValidateKeysGeminiModel(t *testing.T) {
	cfg := &AppConfig{Agent: AgentSettings{SupportModel: "gemini-2.0-flash", VisionModel: "gemini-2.0-flash"}}
	err := validateKeys(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	cfg.GeminiKey = "test-key"
	assert.NoError(t, validateKeys(cfg))
}
