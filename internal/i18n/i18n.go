// Package i18n resolves the CLI's user-facing messages for the active
// display language.
//
// Messages live in gettext catalogs embedded in the binary under
// locales/{lang}/LC_MESSAGES/tradingagents.po and are loaded through
// gotext. Message ids are short keys ("step1_ticker_prompt"); a key with no
// translation resolves to itself so a missing entry shows up as a raw key
// instead of a crash.
//
// A Localizer is created by the session orchestrator and handed to every
// component that prints text. There is no package-level active language.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed all:locales
var locales embed.FS

// domain is the gettext domain name of the catalogs.
const domain = "tradingagents"

// Locale is a supported display language.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"

	DefaultLocale = English
)

// Supported returns the closed set of locales in display order.
func Supported() []Locale {
	return []Locale{English, Chinese}
}

// ParseLocale reports whether s names a supported locale. Matching ignores
// case and surrounding space.
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, sup := range Supported() {
		if l == sup {
			return l, true
		}
	}
	return "", false
}

var (
	catalogOnce sync.Once
	catalogs    map[Locale]*gotext.Locale
)

func loadCatalogs() map[Locale]*gotext.Locale {
	catalogOnce.Do(func() {
		catalogs = make(map[Locale]*gotext.Locale, len(Supported()))
		for _, l := range Supported() {
			po := gotext.NewLocaleFSWithPath(string(l), locales, "locales")
			po.AddDomain(domain)
			po.SetDomain(domain)
			catalogs[l] = po
		}
	})
	return catalogs
}

// Localizer resolves message keys in one active locale.
type Localizer struct {
	locale      Locale
	catalogs    map[Locale]*gotext.Locale
	initialized bool
}

// New returns a Localizer for locale. An unsupported value falls back to
// DefaultLocale.
func New(locale string) *Localizer {
	l, ok := ParseLocale(locale)
	if !ok {
		l = DefaultLocale
	}
	return &Localizer{locale: l, catalogs: loadCatalogs()}
}

// T resolves key in the active locale, returning key itself when no
// translation exists.
func (z *Localizer) T(key string) string {
	po, ok := z.catalogs[z.locale]
	if !ok || po == nil {
		return key
	}
	return po.Get(key, []any{}...)
}

// Tf resolves key and appends args separated by spaces, the way the CLI
// prints "label: value" lines.
func (z *Localizer) Tf(key string, args ...any) string {
	if len(args) == 0 {
		return z.T(key)
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, z.T(key))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Locale returns the active locale.
func (z *Localizer) Locale() Locale {
	return z.locale
}

// SetLocale switches the active locale. Unsupported values leave the
// current locale unchanged and return false.
func (z *Localizer) SetLocale(s string) bool {
	l, ok := ParseLocale(s)
	if !ok {
		return false
	}
	z.locale = l
	return true
}

// Init applies the operator's language choice. It takes effect once; later
// calls are ignored and return false. An unsupported value selects
// DefaultLocale.
func (z *Localizer) Init(s string) bool {
	if z.initialized {
		return false
	}
	z.initialized = true
	l, ok := ParseLocale(s)
	if !ok {
		l = DefaultLocale
	}
	z.locale = l
	return true
}

// For returns a Localizer bound to locale that shares the loaded catalogs.
// It is used to label report files in their own language.
func (z *Localizer) For(locale Locale) *Localizer {
	if _, ok := ParseLocale(string(locale)); !ok {
		locale = DefaultLocale
	}
	return &Localizer{locale: locale, catalogs: z.catalogs, initialized: true}
}

// Check returns "locale:key" for every consumed key that lacks a
// translation in a supported locale. An empty result means the catalogs
// are complete.
func Check() []string {
	cats := loadCatalogs()
	var missing []string
	for _, l := range Supported() {
		z := &Localizer{locale: l, catalogs: cats}
		for _, k := range keys {
			if z.T(k) == k {
				missing = append(missing, string(l)+":"+k)
			}
		}
	}
	sort.Strings(missing)
	return missing
}
