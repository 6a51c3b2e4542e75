package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradingagents/internal/api"
	"tradingagents/internal/llm/prompts"
	"tradingagents/internal/trace"
)

type Config struct {
	// BaseURL includes the API version, e.g. https://generativelanguage.googleapis.com/v1
	BaseURL     string
	APIKey      string
	Model       string
	Temperature *float32
	Timeout     time.Duration
}

type Translator struct {
	cfg    Config
	client *api.Client
}

func New(cfg Config) (*Translator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GOOGLE_API_KEY missing")
	}
	client := api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(cfg.Timeout),
		api.WithHeader("x-goog-api-key", cfg.APIKey),
		api.WithLogging(true),
	)
	return &Translator{cfg: cfg, client: client}, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type genConfig struct {
	Temperature *float32 `json:"temperature,omitempty"`
}

type request struct {
	Contents         []content  `json:"contents"`
	GenerationConfig *genConfig `json:"generationConfig,omitempty"`
}

type response struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorBody struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "gemini-translate")
	defer span.End()

	// The v1 surface has no separate system field; instructions lead the user turn.
	r := request{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompts.TranslationSystem}, {Text: text}},
		}},
	}
	if t.cfg.Temperature != nil {
		r.GenerationConfig = &genConfig{Temperature: t.cfg.Temperature}
	}
	resp, err := t.client.POST(ctx, "/models/"+t.cfg.Model+":generateContent", r)
	if err != nil {
		var he *api.HTTPError
		if errors.As(err, &he) {
			var eb errorBody
			if json.Unmarshal(he.Body, &eb) == nil && eb.Error != nil {
				return "", fmt.Errorf("gemini http %d: %s", he.StatusCode, eb.Error.Message)
			}
		}
		return "", fmt.Errorf("gemini: %w", err)
	}

	var out response
	if err := resp.ParseJSON(&out); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	var sb strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.New("gemini: empty completion")
	}
	return sb.String(), nil
}
