package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"tradingagents/internal/llm/prompts"
	"tradingagents/internal/trace"
)

// Config targets any OpenAI-compatible chat completions endpoint (OpenAI,
// OpenRouter, Ollama). Temperature is sent only when set; several OpenAI
// reasoning models reject anything but their default.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature *float32
	Timeout     time.Duration
}

type generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Translator translates reports through an eino chat model.
type Translator struct {
	model generator
	name  string
}

func New(ctx context.Context, cfg Config) (*Translator, error) {
	cm, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model %s: %w", cfg.Model, err)
	}
	return &Translator{model: cm, name: cfg.Model}, nil
}

func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "openai-translate")
	defer span.End()

	messages := []*schema.Message{
		{Role: schema.System, Content: prompts.TranslationSystem},
		{Role: schema.User, Content: text},
	}

	resp, err := t.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.name, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", errors.New(t.name + ": empty completion")
	}
	return resp.Content, nil
}
