package noop

import (
	"context"
	"errors"

	"tradingagents/internal/logger"
)

// ErrUnavailable is returned for every call; sessions treat it like any
// other translation failure and publish English only.
var ErrUnavailable = errors.New("translation backend unavailable")

// Translator is the fallback used when no backend could be configured
// (typically a missing API key).
type Translator struct {
	reason string
}

func New(reason string) *Translator {
	return &Translator{reason: reason}
}

func (t *Translator) Reason() string { return t.reason }

func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	logger.Debug(ctx, "Noop translator called", "reason", t.reason)
	if t.reason == "" {
		return "", ErrUnavailable
	}
	return "", errors.Join(ErrUnavailable, errors.New(t.reason))
}
