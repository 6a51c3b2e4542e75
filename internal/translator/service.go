// Package translator paces calls to a translation backend.
package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"tradingagents/internal/interfaces"
	"tradingagents/internal/logger"
	"tradingagents/internal/types"
)

// ErrEmptyTranslation is returned when the backend answers with no text.
var ErrEmptyTranslation = errors.New("translation is empty")

type Service struct {
	backend interfaces.Translator
	limiter *rate.Limiter
}

var _ interfaces.Translator = (*Service)(nil)

// New paces backend at requestsPerMinute; zero or less means unlimited.
func New(backend interfaces.Translator, requestsPerMinute float64) *Service {
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Limit(requestsPerMinute / 60.0)
	}
	return &Service{backend: backend, limiter: rate.NewLimiter(limit, 1)}
}

// Translate returns "" without calling the backend when text is blank.
func (s *Service) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	out, err := s.backend.Translate(ctx, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyTranslation
	}
	return out, nil
}

// TranslateSections translates each section in order. The first failure
// stops the run; sections with an empty body are kept as they are.
func (s *Service) TranslateSections(ctx context.Context, sections []types.Section) ([]types.Section, error) {
	op := logger.StartOperation(ctx, "translate-sections", "sections", len(sections))
	ctx = op.GetContext()

	out := make([]types.Section, 0, len(sections))
	for _, sec := range sections {
		if strings.TrimSpace(sec.Body) == "" {
			out = append(out, sec)
			continue
		}
		logger.Info(ctx, "Translating section", "section", sec.Key)
		body, err := s.Translate(ctx, sec.Body)
		if err != nil {
			err = fmt.Errorf("section %s: %w", sec.Key, err)
			op.EndWithError(err)
			return nil, err
		}
		out = append(out, types.Section{Key: sec.Key, Body: body})
	}
	op.End()
	return out, nil
}
