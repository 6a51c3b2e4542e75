package claude

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"tradingagents/internal/api"
	"tradingagents/internal/llm/prompts"
	"tradingagents/internal/trace"
)

const (
	defaultEndpoint  = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"
	defaultMaxTokens = 8192
)

type Config struct {
	// Endpoint is the full messages URL. Empty means the public API, or
	// CLAUDE_API_ENDPOINT when set (proxy/bedrock/vertex).
	Endpoint    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature *float32
	Timeout     time.Duration
}

// Translator implements interfaces.Translator using the Anthropic messages API
type Translator struct {
	cfg    Config
	client *api.Client
}

func New(cfg Config) (*Translator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY missing")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
		if ep := os.Getenv("CLAUDE_API_ENDPOINT"); ep != "" {
			cfg.Endpoint = ep
		}
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	client := api.NewClient(
		api.WithTimeout(cfg.Timeout),
		api.WithHeader("x-api-key", cfg.APIKey),
		api.WithHeader("anthropic-version", apiVersion),
		api.WithLogging(true),
	)
	return &Translator{cfg: cfg, client: client}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system"`
	Messages    []message `json:"messages"`
	Temperature *float32  `json:"temperature,omitempty"`
}

func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "claude-translate")
	defer span.End()

	resp, err := t.client.POST(ctx, t.cfg.Endpoint, request{
		Model:       t.cfg.Model,
		MaxTokens:   t.cfg.MaxTokens,
		System:      prompts.TranslationSystem,
		Messages:    []message{{Role: "user", Content: text}},
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("claude: %w", err)
	}

	out := extractText(resp.Body)
	if strings.TrimSpace(out) == "" {
		return "", errors.New("claude: empty completion")
	}
	return out, nil
}

// extractText pulls the assistant text out of a messages response. Proxies
// in front of the API do not always keep the native shape, so a few common
// alternatives are tried before giving up.
func extractText(body []byte) string {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}

	// native: content is a list of blocks
	if blocks, ok := m["content"].([]any); ok {
		var sb strings.Builder
		for _, b := range blocks {
			if bm, ok := b.(map[string]any); ok && bm["type"] == "text" {
				if s, ok := bm["text"].(string); ok {
					sb.WriteString(s)
				}
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}

	for _, k := range []string{"completion", "output_text", "result"} {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}

	// OpenAI-style gateways
	if choices, ok := m["choices"].([]any); ok && len(choices) > 0 {
		if c0, ok := choices[0].(map[string]any); ok {
			if msg, ok := c0["message"].(map[string]any); ok {
				if s, ok := msg["content"].(string); ok {
					return s
				}
			}
			if s, ok := c0["text"].(string); ok {
				return s
			}
		}
	}
	return ""
}
