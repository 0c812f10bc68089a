package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Providers.Default)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Providers.OpenAI.Model)
	assert.Equal(t, "gpt-35-turbo", cfg.Providers.Azure.Deployment)
	assert.Equal(t, "2024-02-15-preview", cfg.Providers.Azure.APIVersion)
	assert.Equal(t, "google/gemma-2-9b-it:free", cfg.Providers.OpenRouter.Model)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_LLM_PROVIDER", "OpenRouter")
	t.Setenv("OPENAI_API_KEY", "sk-test-12345")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("PRICE_CACHE_ENABLED", "true")
	t.Setenv("PRICE_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	// Provider selection is normalized to lower case.
	assert.Equal(t, "openrouter", cfg.Providers.Default)
	assert.Equal(t, "sk-test-12345", cfg.Providers.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Providers.OpenAI.Model)
	assert.Equal(t, "https://example.openai.azure.com", cfg.Providers.Azure.Endpoint)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestLoad_SecretsHaveNoDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Providers.OpenAI.APIKey)
	assert.Empty(t, cfg.Providers.Azure.APIKey)
	assert.Empty(t, cfg.Providers.OpenRouter.APIKey)
}
