package report

import (
	"fmt"
	"strings"
	"time"

	"tradingagents/internal/i18n"
	"tradingagents/internal/types"
)

// markdownDocument prefixes body with the metadata header. The header labels
// are fixed; only language names the file's language. The body is written
// untouched.
func markdownDocument(labels *i18n.Localizer, cfg types.SessionConfig, generated time.Time, language, body string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", labels.T("report_header_title"))
	fmt.Fprintf(&sb, "**%s:** %s  \n", labels.T("report_header_ticker"), cfg.Ticker)
	fmt.Fprintf(&sb, "**%s:** %s  \n", labels.T("report_header_date"), cfg.AnalysisDate)
	fmt.Fprintf(&sb, "**%s:** %s  \n", labels.T("report_header_generated"), generated.Format(time.DateTime))
	fmt.Fprintf(&sb, "**%s:** %s  \n\n", labels.T("report_header_language"), language)
	sb.WriteString("---\n\n")
	sb.WriteString(body)
	return sb.String()
}
