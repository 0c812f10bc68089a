// Package config builds the process-wide configuration exactly once and
// hands it to every consumer by reference. No other package reads the
// environment for provider settings.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Providers ProviderConfig  `mapstructure:"providers"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// ProviderConfig groups the settings for the three supported chat providers.
// Values are read from the environment at Load time and never again.
type ProviderConfig struct {
	Default    string           `mapstructure:"default"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Azure      AzureConfig      `mapstructure:"azure"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type AzureConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Endpoint   string `mapstructure:"endpoint"`
	Deployment string `mapstructure:"deployment"`
	APIVersion string `mapstructure:"api_version"`
}

type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
	// Optional attribution headers OpenRouter uses for rankings.
	Referer string `mapstructure:"referer"`
	Title   string `mapstructure:"title"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Backend  string        `mapstructure:"backend"` // memory, redis
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// envBindings maps config keys to the environment variables that feed them.
// The names on the right are the public contract of the catalog.
var envBindings = map[string]string{
	"server.port": "PORT",
	"server.env":  "APP_ENV",

	"providers.default":             "DEFAULT_LLM_PROVIDER",
	"providers.openai.api_key":      "OPENAI_API_KEY",
	"providers.openai.model":        "OPENAI_MODEL",
	"providers.openai.base_url":     "OPENAI_BASE_URL",
	"providers.azure.api_key":       "AZURE_OPENAI_API_KEY",
	"providers.azure.endpoint":      "AZURE_OPENAI_ENDPOINT",
	"providers.azure.deployment":    "AZURE_OPENAI_DEPLOYMENT_NAME",
	"providers.azure.api_version":   "AZURE_OPENAI_API_VERSION",
	"providers.openrouter.api_key":  "OPENROUTER_API_KEY",
	"providers.openrouter.model":    "OPENROUTER_MODEL",
	"providers.openrouter.base_url": "OPENROUTER_BASE_URL",
	"providers.openrouter.referer":  "OPENROUTER_REFERER",
	"providers.openrouter.title":    "OPENROUTER_TITLE",

	"cache.enabled":  "PRICE_CACHE_ENABLED",
	"cache.backend":  "PRICE_CACHE_BACKEND",
	"cache.addr":     "REDIS_ADDR",
	"cache.password": "REDIS_PASSWORD",
	"cache.db":       "REDIS_DB",
	"cache.ttl":      "PRICE_CACHE_TTL",

	"tracing.enabled": "TRACING_ENABLED",

	"rate_limit.requests_per_second": "RATE_LIMIT_RPS",
	"rate_limit.burst":               "RATE_LIMIT_BURST",
}

// Load reads a .env file if present, then the process environment. The
// returned Config is treated as immutable by every consumer.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")

	v.SetDefault("providers.default", "openai")
	v.SetDefault("providers.openai.model", "gpt-3.5-turbo")
	v.SetDefault("providers.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("providers.azure.deployment", "gpt-35-turbo")
	v.SetDefault("providers.azure.api_version", "2024-02-15-preview")
	v.SetDefault("providers.openrouter.model", "google/gemma-2-9b-it:free")
	v.SetDefault("providers.openrouter.base_url", "https://openrouter.ai/api/v1")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", time.Minute)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Providers.Default = strings.ToLower(strings.TrimSpace(cfg.Providers.Default))

	return &cfg, nil
}
