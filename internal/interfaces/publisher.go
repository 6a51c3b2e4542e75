package interfaces

import (
	"context"

	"tradingagents/internal/types"
)

type Publisher interface {
	Publish(ctx context.Context, bundle types.ReportBundle) (types.SavedFiles, error)
}
