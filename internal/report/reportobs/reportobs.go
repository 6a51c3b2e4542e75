package reportobs

import (
	"context"

	"tradingagents/internal/interfaces"
	"tradingagents/internal/logger"
	"tradingagents/internal/trace"
	"tradingagents/internal/types"
)

type observablePublisher struct {
	publisher interfaces.Publisher
}

var _ interfaces.Publisher = (*observablePublisher)(nil)

func Wrap(publisher interfaces.Publisher) interfaces.Publisher {
	return &observablePublisher{
		publisher: publisher,
	}
}

func (op *observablePublisher) Publish(ctx context.Context, bundle types.ReportBundle) (types.SavedFiles, error) {
	ctx, span := trace.StartSpan(ctx, "report.Publish")
	defer span.End()

	logger.InfoSkip(ctx, 1, "Publishing report",
		"session_id", bundle.Config.SessionID,
		"ticker", bundle.Config.Ticker,
		"analysis_date", bundle.Config.AnalysisDate,
		"formats", bundle.Config.Formats,
		"translated", bundle.Translated != "",
	)

	if bundle.Config.TranslationEnabled && bundle.Translated == "" {
		logger.WarnSkip(ctx, 1, "No translation available, publishing English only",
			"session_id", bundle.Config.SessionID,
			"model", bundle.Config.TranslationModel,
		)
	}

	saved, err := op.publisher.Publish(ctx, bundle)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Report publishing failed", err,
			"ticker", bundle.Config.Ticker,
			"written", len(saved),
		)
		return saved, err
	}

	logger.InfoSkip(ctx, 1, "Report published",
		"ticker", bundle.Config.Ticker,
		"files", len(saved),
	)

	return saved, nil
}
