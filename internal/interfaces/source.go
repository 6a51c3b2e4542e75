package interfaces

import (
	"context"

	"tradingagents/internal/types"
)

// ReportSource produces the English report for a completed session. The
// analysis pipeline behind it is opaque to the CLI.
type ReportSource interface {
	Fetch(ctx context.Context, cfg types.SessionConfig) (string, error)
}

// SectionSource is implemented by sources that can also return the report
// split into sections, so each one can be translated on its own.
type SectionSource interface {
	FetchSections(ctx context.Context, cfg types.SessionConfig) ([]types.Section, error)
}
