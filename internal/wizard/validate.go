package wizard

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeTicker trims and upper-cases a ticker. It reports false when
// nothing is left.
func NormalizeTicker(s string) (string, bool) {
	t := strings.ToUpper(strings.TrimSpace(s))
	return t, t != ""
}

// ValidTicker reports whether t can be used as a file name segment.
func ValidTicker(t string) bool {
	return t != "." && t != ".." && !strings.ContainsAny(t, `/\`)
}

// ValidDate reports whether s is a calendar date written as YYYY-MM-DD.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
