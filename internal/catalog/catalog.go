// Package catalog holds the static option tables the configuration wizard
// offers: analysts, research depth presets, LLM providers, per-provider
// model lists, translation models, output formats and display languages.
//
// Tables are ordered; the first entry of each is the recommended default.
// Provider-indexed tables are keyed by lower-cased provider id and are
// checked for completeness by Validate at startup.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"tradingagents/internal/types"
)

// ErrUnknownProvider is returned when a provider-indexed table has no entry
// for the requested provider. It signals an authoring defect in the tables,
// not an operator error.
var ErrUnknownProvider = errors.New("unknown provider")

// Option is one selectable entry. Label is either display text or an i18n
// key, depending on the table.
type Option[T any] struct {
	Label string
	Value T
}

// FormatChoice is one output-format selection.
type FormatChoice []types.Format

// Catalog is immutable after construction; accessors return copies.
type Catalog struct {
	analysts          []Option[types.Analyst]
	depths            []Option[int]
	providers         []Option[types.Provider]
	shallowModels     map[string][]Option[string]
	deepModels        map[string][]Option[string]
	translationModels map[string][]Option[string]
	formats           []Option[FormatChoice]
	languages         []Option[string]
}

// Analysts returns the analyst roster. Labels are i18n keys.
func (c *Catalog) Analysts() []Option[types.Analyst] { return clone(c.analysts) }

// Depths returns the research depth presets. Labels are i18n keys; values
// are debate/discussion round counts.
func (c *Catalog) Depths() []Option[int] { return clone(c.depths) }

// Providers returns the LLM providers with their base URLs.
func (c *Catalog) Providers() []Option[types.Provider] { return clone(c.providers) }

// Formats returns the output-format choices. Labels are i18n keys.
func (c *Catalog) Formats() []Option[FormatChoice] {
	out := make([]Option[FormatChoice], len(c.formats))
	for i, o := range c.formats {
		out[i] = Option[FormatChoice]{Label: o.Label, Value: append(FormatChoice(nil), o.Value...)}
	}
	return out
}

// Languages returns the display languages. Labels are i18n keys, values
// are locale codes.
func (c *Catalog) Languages() []Option[string] { return clone(c.languages) }

// ShallowModels returns the quick-thinking models for provider.
func (c *Catalog) ShallowModels(provider string) ([]Option[string], error) {
	return lookup("shallow models", c.shallowModels, provider)
}

// DeepModels returns the deep-thinking models for provider.
func (c *Catalog) DeepModels(provider string) ([]Option[string], error) {
	return lookup("deep models", c.deepModels, provider)
}

// TranslationModels returns the models offered for report translation.
func (c *Catalog) TranslationModels(provider string) ([]Option[string], error) {
	return lookup("translation models", c.translationModels, provider)
}

// Provider finds a provider by id or display name, ignoring case.
func (c *Catalog) Provider(name string) (types.Provider, error) {
	key := ProviderKey(name)
	for _, p := range c.providers {
		if p.Value.ID == key {
			return p.Value, nil
		}
	}
	return types.Provider{}, fmt.Errorf("providers: %w: %q", ErrUnknownProvider, name)
}

// ProviderKey normalizes a provider id or display name into a table key.
func ProviderKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate checks that every table is populated and that every provider has
// a non-empty entry in each provider-indexed table.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.analysts) == 0 {
		errs = append(errs, errors.New("analysts table is empty"))
	}
	if len(c.depths) == 0 {
		errs = append(errs, errors.New("depth table is empty"))
	}
	if len(c.providers) == 0 {
		errs = append(errs, errors.New("provider table is empty"))
	}
	if len(c.formats) == 0 {
		errs = append(errs, errors.New("format table is empty"))
	}
	if len(c.languages) == 0 {
		errs = append(errs, errors.New("language table is empty"))
	}

	tables := []struct {
		name string
		m    map[string][]Option[string]
	}{
		{"shallow models", c.shallowModels},
		{"deep models", c.deepModels},
		{"translation models", c.translationModels},
	}
	for _, p := range c.providers {
		if p.Value.ID != ProviderKey(p.Value.ID) {
			errs = append(errs, fmt.Errorf("provider id %q is not normalized", p.Value.ID))
		}
		for _, t := range tables {
			if len(t.m[p.Value.ID]) == 0 {
				errs = append(errs, fmt.Errorf("%s: no entry for provider %q", t.name, p.Value.ID))
			}
		}
	}
	return errors.Join(errs...)
}

func lookup(table string, m map[string][]Option[string], provider string) ([]Option[string], error) {
	opts, ok := m[ProviderKey(provider)]
	if !ok || len(opts) == 0 {
		return nil, fmt.Errorf("%s: %w: %q", table, ErrUnknownProvider, provider)
	}
	return clone(opts), nil
}

func clone[T any](in []Option[T]) []Option[T] {
	out := make([]Option[T], len(in))
	copy(out, in)
	return out
}

// Labels returns the labels of opts in order.
func Labels[T any](opts []Option[T]) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}
