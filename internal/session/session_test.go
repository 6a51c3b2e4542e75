package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingagents/internal/catalog"
	"tradingagents/internal/i18n"
	"tradingagents/internal/interfaces"
	"tradingagents/internal/report"
	"tradingagents/internal/sessionlog"
	"tradingagents/internal/store"
	"tradingagents/internal/types"
	"tradingagents/internal/ui"
	"tradingagents/internal/wizard"
)

type fixedWizard struct {
	cfg types.SessionConfig
	err error
}

func (f fixedWizard) Run(ctx context.Context) (types.SessionConfig, error) {
	return f.cfg, f.err
}

type fakeTranslator struct {
	calls []string
	err   error
}

func (f *fakeTranslator) Translate(ctx context.Context, text string) (string, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return "", f.err
	}
	return "中文:" + text, nil
}

type memoryLog struct {
	entries []sessionlog.Entry
	err     error
}

func (m *memoryLog) Append(e sessionlog.Entry) error {
	m.entries = append(m.entries, e)
	return m.err
}

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(ctx context.Context, b types.ReportBundle) (types.SavedFiles, error) {
	return nil, f.err
}

type harness struct {
	out        *bytes.Buffer
	translator *fakeTranslator
	log        *memoryLog
	outputDir  string
	deps       Deps
}

func sessionConfig(t *testing.T) types.SessionConfig {
	p, err := catalog.Default().Provider("OpenAI")
	require.NoError(t, err)
	return types.SessionConfig{
		SessionID:          "sess-1",
		Locale:             "en",
		Ticker:             "AAPL",
		AnalysisDate:       "2024-01-15",
		Analysts:           []types.Analyst{types.AnalystMarket, types.AnalystNews},
		ResearchDepth:      3,
		Provider:           p,
		QuickThinkModel:    "gpt-5-mini",
		DeepThinkModel:     "o4-mini",
		TranslationEnabled: true,
		TranslationModel:   "gpt-5-mini",
		SaveEnabled:        true,
		Formats:            []types.Format{types.FormatMarkdown},
	}
}

func writeSource(t *testing.T, name, body string) *report.FileSource {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return report.NewFileSource(path)
}

func newHarness(t *testing.T, cfg types.SessionConfig, src interfaces.ReportSource) *harness {
	h := &harness{
		out:        &bytes.Buffer{},
		translator: &fakeTranslator{},
		log:        &memoryLog{},
		outputDir:  t.TempDir(),
	}
	loc := i18n.New("en")
	clock := func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local) }
	h.deps = Deps{
		Config:    store.Default(),
		Wizard:    fixedWizard{cfg: cfg},
		Source:    src,
		Localizer: loc,
		Console:   ui.Plain(h.out),
		Translators: func(ctx context.Context, cfg types.SessionConfig) interfaces.Translator {
			return h.translator
		},
		Publishers: func(cfg types.SessionConfig) interfaces.Publisher {
			return report.NewPublisher(h.outputDir, nil, loc, report.WithClock(clock))
		},
		Log: h.log,
	}
	return h
}

func TestRunPublishesEnglishAndChinese(t *testing.T) {
	cfg := sessionConfig(t)
	h := newHarness(t, cfg, writeSource(t, "r.md", "## Summary\n\nBuy.\n"))

	res, err := New(h.deps).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))

	assert.Equal(t, "## Summary\n\nBuy.\n", res.English)
	assert.Equal(t, "中文:## Summary\n\nBuy.\n", res.Translated)
	require.Len(t, res.Saved, 2)
	assert.True(t, strings.HasSuffix(res.Saved[0], "AAPL_2024-01-15_100000_report_en.md"))
	assert.True(t, strings.HasSuffix(res.Saved[1], "AAPL_2024-01-15_100000_report_zh.md"))

	text := h.out.String()
	assert.Contains(t, text, "Translating report to Chinese...")
	assert.Contains(t, text, "[OK] Translation completed!")
	assert.Contains(t, text, "[OK] Report saved successfully!")
	assert.Contains(t, text, "Report saved at: "+res.Saved[0])

	require.Len(t, h.log.entries, 1)
	e := h.log.entries[0]
	assert.Equal(t, "sess-1", e.SessionID)
	assert.True(t, e.Translated)
	assert.Equal(t, []string(res.Saved), e.SavedFiles)
	assert.Empty(t, e.Error)
	assert.Equal(t, 3, e.Analysis.MaxDebateRounds)
}

func TestRunTranslationFailureFallsBackToEnglish(t *testing.T) {
	cfg := sessionConfig(t)
	h := newHarness(t, cfg, writeSource(t, "r.md", "## Summary\n"))
	h.translator.err = errors.New("401 unauthorized")

	res, err := New(h.deps).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Translated)
	require.Len(t, res.Saved, 1)
	assert.True(t, strings.HasSuffix(res.Saved[0], "report_en.md"))
	assert.Contains(t, h.out.String(), "[WARN] Translation failed, showing English report only.")
	assert.False(t, h.log.entries[0].Translated)
}

func TestRunTranslatesSectionsWithLocalizedHeadings(t *testing.T) {
	cfg := sessionConfig(t)
	h := newHarness(t, cfg, writeSource(t, "r.yaml", "market_report: Up\nfinal_trade_decision: BUY\n"))

	res, err := New(h.deps).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "## Market Analysis Report\n\nUp\n\n## Final Portfolio Decision\n\nBUY\n", res.English)
	assert.Equal(t, []string{"Up", "BUY"}, h.translator.calls)
	assert.True(t, strings.HasPrefix(res.Translated, "## 市场分析报告\n\n中文:Up\n\n## "))
	assert.True(t, strings.HasSuffix(res.Translated, "\n\n中文:BUY\n"))
}

func TestRunWithoutTranslationOrSave(t *testing.T) {
	cfg := sessionConfig(t)
	cfg.TranslationEnabled = false
	cfg.SaveEnabled = false
	cfg.Formats = nil
	h := newHarness(t, cfg, writeSource(t, "r.md", "body\n"))

	res, err := New(h.deps).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, h.translator.calls)
	assert.Empty(t, res.Saved)
	assert.Contains(t, h.out.String(), "Report was not saved.")

	entries, err := os.ReadDir(h.outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.Len(t, h.log.entries, 1)
}

func TestRunWizardAbort(t *testing.T) {
	h := newHarness(t, types.SessionConfig{}, writeSource(t, "r.md", "x"))
	h.deps.Wizard = fixedWizard{err: &wizard.AbortError{Step: wizard.StepTicker, Key: "error_no_ticker"}}

	_, err := New(h.deps).Run(context.Background())
	var abort *wizard.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, h.out.String(), "[ERROR] No ticker symbol provided. Exiting...")
	assert.Empty(t, h.log.entries)
}

func TestRunMissingReport(t *testing.T) {
	cfg := sessionConfig(t)
	h := newHarness(t, cfg, report.NewFileSource(filepath.Join(t.TempDir(), "none.md")))

	_, err := New(h.deps).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, h.out.String(), "Could not obtain the analysis report.")
	assert.Empty(t, h.translator.calls)
	require.Len(t, h.log.entries, 1)
	assert.Equal(t, err.Error(), h.log.entries[0].Error)
	assert.True(t, strings.HasPrefix(h.log.entries[0].Error, "report source: "))
}

func TestRunWithoutSaveIgnoresMissingReport(t *testing.T) {
	cfg := sessionConfig(t)
	cfg.TranslationEnabled = false
	cfg.SaveEnabled = false
	cfg.Formats = nil
	h := newHarness(t, cfg, report.NewFileSource(filepath.Join(t.TempDir(), "none.md")))

	_, err := New(h.deps).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
	assert.Contains(t, h.out.String(), "Report was not saved.")
	assert.NotContains(t, h.out.String(), "Could not obtain the analysis report")
}

func TestRunTranslateOnlyWarnsOnMissingReport(t *testing.T) {
	cfg := sessionConfig(t)
	cfg.SaveEnabled = false
	cfg.Formats = nil
	h := newHarness(t, cfg, report.NewFileSource(filepath.Join(t.TempDir(), "none.md")))

	_, err := New(h.deps).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
	assert.Empty(t, h.translator.calls)
	assert.Contains(t, h.out.String(), "[WARN] Could not obtain the analysis report, skipping translation.")
	require.Len(t, h.log.entries, 1)
	assert.True(t, strings.HasPrefix(h.log.entries[0].Error, "report source: "))
}

func TestRunPublishFailure(t *testing.T) {
	cfg := sessionConfig(t)
	h := newHarness(t, cfg, writeSource(t, "r.md", "x\n"))
	boom := errors.New("disk full")
	h.deps.Publishers = func(types.SessionConfig) interfaces.Publisher { return failingPublisher{err: boom} }

	_, err := New(h.deps).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, h.out.String(), "[ERROR] Failed to save report.")
	require.Len(t, h.log.entries, 1)
	assert.Equal(t, "publish: disk full", h.log.entries[0].Error)
	assert.Equal(t, err.Error(), h.log.entries[0].Error)
}

func TestRunSessionLogFailureIsNotFatal(t *testing.T) {
	cfg := sessionConfig(t)
	cfg.SaveEnabled = false
	h := newHarness(t, cfg, writeSource(t, "r.md", "x\n"))
	h.log.err = errors.New("read-only")

	_, err := New(h.deps).Run(context.Background())
	assert.NoError(t, err)
}

func TestAnalysisConfig(t *testing.T) {
	c := store.Default()
	c.LLM.MaxRecurLimit = 50

	cfg := sessionConfig(t)
	cfg.ResearchDepth = 5
	a := AnalysisConfig(c, cfg)
	assert.Equal(t, "openai", a.LLMProvider)
	assert.Equal(t, "https://api.openai.com/v1", a.BackendURL)
	assert.Equal(t, "gpt-5-mini", a.QuickThinkLLM)
	assert.Equal(t, "o4-mini", a.DeepThinkLLM)
	assert.Equal(t, 5, a.MaxDebateRounds)
	assert.Equal(t, 5, a.MaxRiskDiscussRounds)
	assert.Equal(t, 50, a.MaxRecurLimit)
	assert.True(t, a.OnlineTools)
	assert.Equal(t, []types.Analyst{types.AnalystMarket, types.AnalystNews}, a.Analysts)

	empty := AnalysisConfig(nil, types.SessionConfig{})
	assert.Equal(t, "openai", empty.LLMProvider)
	assert.Equal(t, "gpt-5-mini", empty.QuickThinkLLM)
}
