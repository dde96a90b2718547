// Package ai provides factory functions for creating LLM service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/revu-cli/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/llm/gemini"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
)

// Supported LLM provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// pingTimeout is the maximum time to wait for provider connectivity validation.
const pingTimeout = 5 * time.Second

// Settings describes the configured LLM provider.
type Settings struct {
	// Provider is one of openai, gemini, anthropic, or ollama.
	Provider string

	// APIKey authenticates hosted providers. Not used by ollama.
	APIKey string

	// BaseURL overrides the provider endpoint. Not used by gemini.
	BaseURL string

	// Model is the model name. Empty selects the provider default.
	Model string
}

// IsConfigured reports whether the settings name a usable provider.
// Hosted providers additionally need an API key.
func (s Settings) IsConfigured() bool {
	switch s.Provider {
	case ProviderOllama:
		return true
	case ProviderOpenAI, ProviderGemini, ProviderAnthropic:
		return s.APIKey != ""
	default:
		return false
	}
}

// SettingsFromConfig reads LLM settings from the config store.
// Keys: llm.provider, llm.api_key, llm.base_url, llm.model.
func SettingsFromConfig(cfg driven.ConfigStore) Settings {
	return Settings{
		Provider: cfg.GetString("llm.provider"),
		APIKey:   cfg.GetString("llm.api_key"),
		BaseURL:  cfg.GetString("llm.base_url"),
		Model:    cfg.GetString("llm.model"),
	}
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if no provider is configured.
func CreateLLMService(ctx context.Context, settings Settings) (driven.LLMService, error) {
	if settings.Provider == "" {
		return nil, nil
	}

	switch settings.Provider {
	case ProviderOpenAI:
		return openai.NewLLMService(openai.LLMConfig{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case ProviderGemini:
		return gemini.NewLLMService(ctx, gemini.LLMConfig{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case ProviderAnthropic:
		return anthropic.NewLLMService(anthropic.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case ProviderOllama:
		return ollama.NewLLMService(ollama.LLMConfig{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns nil without error when no provider is configured, so callers can
// degrade to template-based feedback.
func CreateAndValidateLLMService(ctx context.Context, settings Settings) (driven.LLMService, error) {
	if settings.Provider == "" {
		return nil, nil
	}
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: provider %q needs an API key. Run 'revu config set llm.api_key <key>'",
			domain.ErrLLMUnavailable, settings.Provider)
	}

	svc, err := CreateLLMService(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}
	if svc == nil {
		return nil, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)", domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}
