package llmobs

import (
	"context"
	"time"

	"tradingagents/internal/interfaces"
	"tradingagents/internal/logger"
	"tradingagents/internal/trace"
)

// observableTranslator wraps a Translator with observability (logging & tracing)
type observableTranslator struct {
	translator interfaces.Translator
	model      string
}

// Compile-time interface check
var _ interfaces.Translator = (*observableTranslator)(nil)

// Wrap wraps a translator with observability middleware
func Wrap(translator interfaces.Translator, model string) interfaces.Translator {
	return &observableTranslator{translator: translator, model: model}
}

func (ot *observableTranslator) Translate(ctx context.Context, text string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Translate")
	defer span.End()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Requesting translation",
		"model", ot.model,
		"input_chars", len(text),
	)

	start := time.Now()
	out, err := ot.translator.Translate(ctx, text)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Translation failed", err,
			"model", ot.model,
			"elapsed", time.Since(start),
		)
		return "", err
	}

	logger.InfoSkip(ctx, 1, "Translation received",
		"model", ot.model,
		"output_chars", len(out),
		"elapsed", time.Since(start),
	)
	return out, nil
}
