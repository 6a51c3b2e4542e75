// Package report turns a finished analysis into files on disk.
//
// A Publisher writes one file per (language, format) pair: English always,
// Chinese only when a translated body is present, Markdown and/or HTML as
// the session asked. Files are named
//
//	{TICKER}_{date}_{HHMMSS}_report_{lang}.{md|html}
//
// where HHMMSS is the wall-clock time of the publish call. Two publishes of
// the same ticker and date within one second write the same names and the
// later one wins.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tradingagents/internal/i18n"
	"tradingagents/internal/interfaces"
	"tradingagents/internal/logger"
	"tradingagents/internal/types"
)

type Publisher struct {
	outputDir string
	renderer  Renderer
	loc       *i18n.Localizer
	now       func() time.Time
}

var _ interfaces.Publisher = (*Publisher)(nil)

type Option func(*Publisher)

// WithClock sets the time source used for file names and headers.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) { p.now = now }
}

// NewPublisher creates a publisher writing into outputDir. A nil renderer
// selects DefaultRenderer; a nil localizer uses the default locale catalogs.
func NewPublisher(outputDir string, renderer Renderer, loc *i18n.Localizer, opts ...Option) *Publisher {
	if renderer == nil {
		renderer = DefaultRenderer()
	}
	if loc == nil {
		loc = i18n.New("")
	}
	p := &Publisher{
		outputDir: outputDir,
		renderer:  renderer,
		loc:       loc,
		now:       time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

type variant struct {
	lang string
	body string
}

// Publish writes the bundle and returns the absolute paths in the order
// en-md, en-html, zh-md, zh-html, skipping what does not apply. On a write
// failure the files already written are left in place and returned along
// with the error.
func (p *Publisher) Publish(ctx context.Context, bundle types.ReportBundle) (types.SavedFiles, error) {
	cfg := bundle.Config
	if len(cfg.Formats) == 0 {
		cfg.Formats = []types.Format{types.FormatMarkdown}
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", p.outputDir, err)
	}
	dir, err := filepath.Abs(p.outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir %s: %w", p.outputDir, err)
	}

	generated := p.now()
	stamp := generated.Format("150405")

	variants := []variant{{lang: types.LangEnglish, body: bundle.English}}
	if bundle.Translated != "" {
		variants = append(variants, variant{lang: types.LangChinese, body: bundle.Translated})
	}

	labels := p.loc.For(i18n.English)

	var saved types.SavedFiles
	for _, v := range variants {
		language := p.loc.For(i18n.Locale(v.lang)).T("report_language_label")

		if cfg.HasFormat(types.FormatMarkdown) {
			path := filepath.Join(dir, fileName(cfg, stamp, v.lang, types.FormatMarkdown))
			if err := writeFile(path, markdownDocument(labels, cfg, generated, language, v.body)); err != nil {
				return saved, err
			}
			saved = append(saved, path)
			logger.Published(ctx, cfg.Ticker, v.lang, string(types.FormatMarkdown), path)
		}

		if cfg.HasFormat(types.FormatHTML) {
			fragment, err := p.renderer.Render(v.body)
			if err != nil {
				return saved, fmt.Errorf("render %s report: %w", v.lang, err)
			}
			doc, err := htmlDocument(labels, cfg, generated, v.lang, language, fragment)
			if err != nil {
				return saved, fmt.Errorf("build %s html page: %w", v.lang, err)
			}
			path := filepath.Join(dir, fileName(cfg, stamp, v.lang, types.FormatHTML))
			if err := writeFile(path, doc); err != nil {
				return saved, err
			}
			saved = append(saved, path)
			logger.Published(ctx, cfg.Ticker, v.lang, string(types.FormatHTML), path)
		}
	}

	return saved, nil
}

func fileName(cfg types.SessionConfig, stamp, lang string, f types.Format) string {
	return fmt.Sprintf("%s_%s_%s_report_%s.%s", cfg.Ticker, cfg.AnalysisDate, stamp, lang, f)
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
