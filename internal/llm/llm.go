// Package llm builds the report translator for the provider chosen in the
// wizard. OpenAI, OpenRouter and Ollama share the OpenAI-compatible chat
// model; Anthropic and Google get their native HTTP APIs.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"tradingagents/internal/catalog"
	"tradingagents/internal/interfaces"
	"tradingagents/internal/llm/claude"
	"tradingagents/internal/llm/gemini"
	"tradingagents/internal/llm/llmobs"
	"tradingagents/internal/llm/noop"
	"tradingagents/internal/llm/openai"
	"tradingagents/internal/logger"
	"tradingagents/internal/types"
)

type Settings struct {
	Provider    types.Provider
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// apiKeyEnv lists the variables checked for each provider, first match wins.
var apiKeyEnv = map[string][]string{
	catalog.ProviderOpenAI:     {"OPENAI_API_KEY"},
	catalog.ProviderOpenRouter: {"OPENROUTER_API_KEY", "OPENAI_API_KEY"},
	catalog.ProviderAnthropic:  {"ANTHROPIC_API_KEY", "CLAUDE_API_KEY"},
	catalog.ProviderGoogle:     {"GOOGLE_API_KEY", "GEMINI_API_KEY"},
	catalog.ProviderOllama:     nil,
}

// APIKey returns the credential for a provider from the environment. The
// bool is false for unknown providers.
func APIKey(provider string) (string, bool) {
	names, ok := apiKeyEnv[catalog.ProviderKey(provider)]
	if !ok {
		return "", false
	}
	for _, n := range names {
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v, true
		}
	}
	return "", true
}

// NewTranslator returns an observable translator for s.Provider.
func NewTranslator(ctx context.Context, s Settings) (interfaces.Translator, error) {
	id := catalog.ProviderKey(s.Provider.ID)
	key, known := APIKey(id)
	if !known {
		return nil, fmt.Errorf("translator: %w: %q", catalog.ErrUnknownProvider, s.Provider.ID)
	}
	if s.Model == "" {
		return nil, fmt.Errorf("translator: no model for provider %q", id)
	}

	var temp *float32
	if s.Temperature > 0 {
		t := s.Temperature
		temp = &t
	}

	var (
		tr  interfaces.Translator
		err error
	)
	switch id {
	case catalog.ProviderAnthropic:
		tr, err = claude.New(claude.Config{
			Endpoint:    anthropicEndpoint(s.Provider.URL),
			APIKey:      key,
			Model:       s.Model,
			Temperature: temp,
			Timeout:     s.Timeout,
		})
	case catalog.ProviderGoogle:
		tr, err = gemini.New(gemini.Config{
			BaseURL:     s.Provider.URL,
			APIKey:      key,
			Model:       s.Model,
			Temperature: temp,
			Timeout:     s.Timeout,
		})
	default:
		if key == "" && id != catalog.ProviderOllama {
			return nil, fmt.Errorf("translator: %s API key missing", s.Provider.Name)
		}
		if key == "" {
			// ollama ignores the key but the client refuses an empty one
			key = "ollama"
		}
		tr, err = openai.New(ctx, openai.Config{
			BaseURL:     s.Provider.URL,
			APIKey:      key,
			Model:       s.Model,
			Temperature: temp,
			Timeout:     s.Timeout,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("translator: %w", err)
	}
	return llmobs.Wrap(tr, s.Model), nil
}

// NewTranslatorOrNoop falls back to a translator that always fails, so the
// session still publishes the English report.
func NewTranslatorOrNoop(ctx context.Context, s Settings) interfaces.Translator {
	tr, err := NewTranslator(ctx, s)
	if err != nil {
		logger.Warn(ctx, "No translation backend available - using Noop translator", "error", err)
		return llmobs.Wrap(noop.New(err.Error()), s.Model)
	}
	return tr
}

// anthropicEndpoint turns the catalog base URL into the messages endpoint.
// An empty base leaves the choice to the claude package.
func anthropicEndpoint(base string) string {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return ""
	}
	if strings.HasSuffix(base, "/v1") {
		return base + "/messages"
	}
	return base + "/v1/messages"
}
