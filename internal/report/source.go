package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tradingagents/internal/interfaces"
	"tradingagents/internal/types"
)

// ErrEmptyReport is returned when a source yields no report text.
var ErrEmptyReport = errors.New("report is empty")

// Sections are the per-team outputs of the analysis pipeline.
type Sections struct {
	MarketReport         string `yaml:"market_report"`
	SentimentReport      string `yaml:"sentiment_report"`
	NewsReport           string `yaml:"news_report"`
	FundamentalsReport   string `yaml:"fundamentals_report"`
	InvestmentPlan       string `yaml:"investment_plan"`
	TraderInvestmentPlan string `yaml:"trader_investment_plan"`
	FinalTradeDecision   string `yaml:"final_trade_decision"`
}

// sectionKeys are the localization keys of the section titles, in pipeline
// order.
var sectionKeys = []string{
	"report_market",
	"report_sentiment",
	"report_news",
	"report_fundamentals",
	"report_investment",
	"report_trader",
	"report_final",
}

var englishTitles = map[string]string{
	"report_market":       "Market Analysis Report",
	"report_sentiment":    "Sentiment Analysis Report",
	"report_news":         "News Analysis Report",
	"report_fundamentals": "Fundamentals Analysis Report",
	"report_investment":   "Investment Research Report",
	"report_trader":       "Trading Decision",
	"report_final":        "Final Portfolio Decision",
}

// List returns the non-empty sections in pipeline order, bodies trimmed.
func (s Sections) List() []types.Section {
	bodies := []string{
		s.MarketReport,
		s.SentimentReport,
		s.NewsReport,
		s.FundamentalsReport,
		s.InvestmentPlan,
		s.TraderInvestmentPlan,
		s.FinalTradeDecision,
	}
	var out []types.Section
	for i, b := range bodies {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, types.Section{Key: sectionKeys[i], Body: b})
		}
	}
	return out
}

// Compose joins the non-empty sections under fixed English headings, in
// pipeline order.
func Compose(s Sections) string {
	return ComposeSections(s.List(), func(key string) string { return englishTitles[key] })
}

// ComposeSections renders sections as "## title" blocks, skipping empty
// bodies.
func ComposeSections(list []types.Section, title func(key string) string) string {
	var blocks []string
	for _, sec := range list {
		body := strings.TrimSpace(sec.Body)
		if body == "" {
			continue
		}
		blocks = append(blocks, "## "+title(sec.Key)+"\n\n"+body)
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// FileSource reads the English report produced by the analysis pipeline.
// A .md file is used verbatim; a .yaml or .yml file holds Sections. The
// path may contain {ticker} and {date} placeholders.
type FileSource struct {
	path string
}

var (
	_ interfaces.ReportSource  = (*FileSource)(nil)
	_ interfaces.SectionSource = (*FileSource)(nil)
)

// ErrNotSectioned is returned by FetchSections for a plain Markdown report.
var ErrNotSectioned = errors.New("report has no sections")

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path resolves the placeholders for cfg.
func (s *FileSource) Path(cfg types.SessionConfig) string {
	return strings.NewReplacer("{ticker}", cfg.Ticker, "{date}", cfg.AnalysisDate).Replace(s.path)
}

func isSectioned(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (s *FileSource) Fetch(ctx context.Context, cfg types.SessionConfig) (string, error) {
	path := s.Path(cfg)
	if isSectioned(path) {
		list, err := s.FetchSections(ctx, cfg)
		if err != nil {
			return "", err
		}
		return ComposeSections(list, func(key string) string { return englishTitles[key] }), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report %s: %w", path, err)
	}
	text := string(b)

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyReport)
	}
	return text, nil
}

// FetchSections returns the non-empty sections of a YAML report, or
// ErrNotSectioned for any other file.
func (s *FileSource) FetchSections(ctx context.Context, cfg types.SessionConfig) ([]types.Section, error) {
	path := s.Path(cfg)
	if !isSectioned(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotSectioned)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	var sec Sections
	if err := yaml.Unmarshal(b, &sec); err != nil {
		return nil, fmt.Errorf("parse report sections %s: %w", path, err)
	}
	list := sec.List()
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyReport)
	}
	return list, nil
}
