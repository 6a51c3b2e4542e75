package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingagents/internal/types"
)

func TestComposeSkipsEmptySectionsInOrder(t *testing.T) {
	got := Compose(Sections{
		FinalTradeDecision: "SELL\n",
		MarketReport:       "  Trend is down. ",
		NewsReport:         "   ",
	})
	assert.Equal(t, "## Market Analysis Report\n\nTrend is down.\n\n## Final Portfolio Decision\n\nSELL\n", got)
	assert.Empty(t, Compose(Sections{}))
}

func TestFileSourceMarkdownVerbatim(t *testing.T) {
	dir := t.TempDir()
	body := "# Report\n\nline  \n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NVDA_2024-05-01.md"), []byte(body), 0o644))

	src := NewFileSource(filepath.Join(dir, "{ticker}_{date}.md"))
	got, err := src.Fetch(context.Background(), types.SessionConfig{Ticker: "NVDA", AnalysisDate: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestFileSourceYAMLSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.yaml")
	yml := "market_report: |\n  Uptrend intact.\nnews_report: Earnings beat.\ntrader_investment_plan: BUY\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	got, err := NewFileSource(path).Fetch(context.Background(), types.SessionConfig{})
	require.NoError(t, err)
	assert.Equal(t, "## Market Analysis Report\n\nUptrend intact.\n\n## News Analysis Report\n\nEarnings beat.\n\n## Trading Decision\n\nBUY\n", got)
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.md")).Fetch(context.Background(), types.SessionConfig{})
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte("market_report: \"\"\n"), 0o644))
	_, err = NewFileSource(empty).Fetch(context.Background(), types.SessionConfig{})
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestFetchSectionsKeysInPipelineOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AAPL.yml")
	yml := "final_trade_decision: HOLD\nmarket_report: \"  Range bound \"\nsentiment_report: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	got, err := NewFileSource(path).FetchSections(context.Background(), types.SessionConfig{})
	require.NoError(t, err)
	assert.Equal(t, []types.Section{
		{Key: "report_market", Body: "Range bound"},
		{Key: "report_final", Body: "HOLD"},
	}, got)

	zh := ComposeSections(got, func(key string) string { return "T:" + key })
	assert.Equal(t, "## T:report_market\n\nRange bound\n\n## T:report_final\n\nHOLD\n", zh)
}

func TestFetchSectionsRejectsMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte("# r\n"), 0o644))

	_, err := NewFileSource(path).FetchSections(context.Background(), types.SessionConfig{})
	assert.ErrorIs(t, err, ErrNotSectioned)
}
