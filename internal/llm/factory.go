package llm

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/platform/logger"
)

// New constructs the client for the named provider. All required settings
// are checked here; a missing credential surfaces as *ConfigError naming the
// environment variable, never as a failed network call later.
func New(cfg *config.Config, name ProviderName) (Client, error) {
	switch name {
	case OpenAI:
		return newOpenAI(cfg.Providers.OpenAI)
	case Azure:
		return newAzure(cfg.Providers.Azure)
	case OpenRouter:
		return newOpenRouter(cfg.Providers.OpenRouter)
	default:
		return nil, &ConfigError{Provider: name, Valid: ValidProviders()}
	}
}

// Default constructs the client selected by DEFAULT_LLM_PROVIDER.
func Default(cfg *config.Config) (Client, error) {
	name := cfg.Providers.Default
	if name == "" {
		name = string(OpenAI)
	}
	return New(cfg, ProviderName(name))
}

func newOpenAI(cfg config.OpenAIConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, missingVar(OpenAI, "OPENAI_API_KEY")
	}
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	return &restClient{
		provider: OpenAI,
		model:    cfg.Model,
		url:      fmt.Sprintf("%s/chat/completions", strings.TrimRight(base, "/")),
		headers:  map[string]string{"Authorization": "Bearer " + cfg.APIKey},
		http:     newHTTPClient(),
		log:      logger.With(zap.String("provider", string(OpenAI))),
	}, nil
}

func newAzure(cfg config.AzureConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, missingVar(Azure, "AZURE_OPENAI_API_KEY")
	}
	if cfg.Endpoint == "" {
		return nil, missingVar(Azure, "AZURE_OPENAI_ENDPOINT")
	}

	// The deployment is addressed in the path; api-version is mandatory.
	endpoint := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(cfg.Endpoint, "/"),
		url.PathEscape(cfg.Deployment),
		url.QueryEscape(cfg.APIVersion),
	)
	return &restClient{
		provider: Azure,
		model:    cfg.Deployment,
		url:      endpoint,
		headers:  map[string]string{"api-key": cfg.APIKey},
		http:     newHTTPClient(),
		log:      logger.With(zap.String("provider", string(Azure))),
	}, nil
}

func newOpenRouter(cfg config.OpenRouterConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, missingVar(OpenRouter, "OPENROUTER_API_KEY")
	}
	base := cfg.BaseURL
	if base == "" {
		base = "https://openrouter.ai/api/v1"
	}

	headers := map[string]string{"Authorization": "Bearer " + cfg.APIKey}
	if cfg.Referer != "" {
		headers["HTTP-Referer"] = cfg.Referer
	}
	if cfg.Title != "" {
		headers["X-Title"] = cfg.Title
	}
	return &restClient{
		provider: OpenRouter,
		model:    cfg.Model,
		url:      fmt.Sprintf("%s/chat/completions", strings.TrimRight(base, "/")),
		headers:  headers,
		http:     newHTTPClient(),
		log:      logger.With(zap.String("provider", string(OpenRouter))),
	}, nil
}
