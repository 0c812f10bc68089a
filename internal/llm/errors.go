package llm

import (
	"fmt"
	"strings"
)

// ConfigError reports a provider that cannot be constructed: either the
// name is outside the supported set, or a required environment variable is
// unset. The message names the exact variable so the fix is obvious.
type ConfigError struct {
	Provider   ProviderName
	MissingVar string
	Valid      []ProviderName
}

func (e *ConfigError) Error() string {
	if e.MissingVar != "" {
		return fmt.Sprintf("provider %q requires the %s environment variable", e.Provider, e.MissingVar)
	}
	names := make([]string, len(e.Valid))
	for i, p := range e.Valid {
		names[i] = string(p)
	}
	return fmt.Sprintf("unknown provider %q (valid providers: %s)", e.Provider, strings.Join(names, ", "))
}

func missingVar(provider ProviderName, name string) *ConfigError {
	return &ConfigError{Provider: provider, MissingVar: name}
}

// ProviderError wraps a failed upstream call, tagging it with the provider
// that produced it. The underlying httpclient error stays reachable through
// errors.As.
type ProviderError struct {
	Provider ProviderName
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
