package report

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"tradingagents/internal/i18n"
	"tradingagents/internal/types"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

const (
	latinFonts = template.CSS(`'Segoe UI', Arial, sans-serif`)
	cjkFonts   = template.CSS(`'Microsoft YaHei', '微软雅黑', 'SimHei', sans-serif`)
)

type page struct {
	Lang       string
	FontFamily template.CSS
	Content    template.HTML

	Ticker    string
	Date      string
	Generated string
	Language  string

	Title           string
	Subtitle        string
	TickerLabel     string
	DateLabel       string
	GeneratedLabel  string
	LanguageHeading string
	GeneratedBy     string
	BuiltBy         string
	Disclaimer      string
}

// fontStack picks the body font family for a report language.
func fontStack(lang string) template.CSS {
	if lang == types.LangChinese {
		return cjkFonts
	}
	return latinFonts
}

// htmlDocument wraps an already rendered fragment in the report page. lang
// drives the lang attribute and the font stack; the page text comes from
// labels.
func htmlDocument(labels *i18n.Localizer, cfg types.SessionConfig, generated time.Time, lang, language, fragment string) (string, error) {
	p := page{
		Lang:       lang,
		FontFamily: fontStack(lang),
		Content:    template.HTML(fragment),

		Ticker:    cfg.Ticker,
		Date:      cfg.AnalysisDate,
		Generated: generated.Format("2006-01-02 15:04"),
		Language:  language,

		Title:           labels.T("report_header_title"),
		Subtitle:        labels.T("report_header_subtitle"),
		TickerLabel:     labels.T("report_header_ticker_symbol"),
		DateLabel:       labels.T("report_header_date"),
		GeneratedLabel:  labels.T("report_header_generated"),
		LanguageHeading: labels.T("report_header_language"),
		GeneratedBy:     labels.T("report_footer_generated_by"),
		BuiltBy:         labels.T("report_footer_built_by"),
		Disclaimer:      labels.T("report_disclaimer"),
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, p); err != nil {
		return "", err
	}
	return sb.String(), nil
}
