// Package wizard runs the interactive questions that produce a
// types.SessionConfig.
//
// Steps are asked strictly in order and never revisited. A step either
// completes or is cancelled; what a cancellation means (abort the session or
// substitute a default) is decided here from Policies, not by the step.
// Malformed answers are re-asked with a localized hint.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tradingagents/internal/catalog"
	"tradingagents/internal/i18n"
	"tradingagents/internal/interfaces"
	"tradingagents/internal/logger"
	"tradingagents/internal/trace"
	"tradingagents/internal/types"
	"tradingagents/internal/ui"
)

type Wizard struct {
	prompter interfaces.Prompter
	catalog  *catalog.Catalog
	loc      *i18n.Localizer
	out      *ui.Console
	policies map[Step]Policy
	newID    func() string
	locale   string
}

type Option func(*Wizard)

// WithPolicies replaces the cancellation table.
func WithPolicies(p map[Step]Policy) Option {
	return func(w *Wizard) { w.policies = p }
}

// WithSessionID overrides session id generation.
func WithSessionID(fn func() string) Option {
	return func(w *Wizard) { w.newID = fn }
}

// WithLocale skips the language question and uses locale instead.
func WithLocale(locale string) Option {
	return func(w *Wizard) { w.locale = locale }
}

func New(p interfaces.Prompter, c *catalog.Catalog, loc *i18n.Localizer, out *ui.Console, opts ...Option) *Wizard {
	w := &Wizard{
		prompter: p,
		catalog:  c,
		loc:      loc,
		out:      out,
		policies: Policies,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Run asks every step and returns the completed configuration. A cancelled
// mandatory step returns *AbortError; prompter and catalog failures are
// returned wrapped.
func (w *Wizard) Run(ctx context.Context) (types.SessionConfig, error) {
	ctx, span := trace.StartSpan(ctx, "wizard.Run")
	defer span.End()

	cfg := types.SessionConfig{SessionID: w.newID()}
	var err error

	if err = w.chooseLanguage(ctx, cfg.SessionID); err != nil {
		return types.SessionConfig{}, err
	}
	cfg.Locale = string(w.loc.Locale())
	w.welcome()

	ticker, err := w.askTicker()
	if cfg.Ticker, err = settle(ctx, w, cfg.SessionID, StepTicker, ticker, err, ""); err != nil {
		return types.SessionConfig{}, err
	}
	w.out.Info(w.loc.Tf("selected_ticker", cfg.Ticker))

	date, err := w.askDate()
	if cfg.AnalysisDate, err = settle(ctx, w, cfg.SessionID, StepDate, date, err, ""); err != nil {
		return types.SessionConfig{}, err
	}
	w.out.Info(w.loc.Tf("analysis_date", cfg.AnalysisDate))

	analysts, err := w.askAnalysts()
	if cfg.Analysts, err = settle(ctx, w, cfg.SessionID, StepAnalysts, analysts, err, []types.Analyst(nil)); err != nil {
		return types.SessionConfig{}, err
	}
	w.out.Info(w.loc.Tf("selected_analysts", w.analystNames(cfg.Analysts)))

	depth, err := w.askDepth()
	if cfg.ResearchDepth, err = settle(ctx, w, cfg.SessionID, StepDepth, depth, err, 0); err != nil {
		return types.SessionConfig{}, err
	}

	provider, err := w.askProvider()
	if cfg.Provider, err = settle(ctx, w, cfg.SessionID, StepProvider, provider, err, types.Provider{}); err != nil {
		return types.SessionConfig{}, err
	}
	w.out.Info(w.loc.Tf("selected_provider", cfg.Provider.Name, cfg.Provider.URL))

	w.out.Title(w.loc.T("step6_thinking_title"))
	quick, err := w.askModel("step6_quick_prompt", w.catalog.ShallowModels, cfg.Provider.ID)
	if cfg.QuickThinkModel, err = settle(ctx, w, cfg.SessionID, StepQuickModel, quick, err, ""); err != nil {
		return types.SessionConfig{}, err
	}
	deep, err := w.askModel("step6_deep_prompt", w.catalog.DeepModels, cfg.Provider.ID)
	if cfg.DeepThinkModel, err = settle(ctx, w, cfg.SessionID, StepDeepModel, deep, err, ""); err != nil {
		return types.SessionConfig{}, err
	}

	translate, err := w.askYesNo("step7_translation_title", "step7_translation_prompt", "translation_yes", "translation_no")
	if cfg.TranslationEnabled, err = settle(ctx, w, cfg.SessionID, StepTranslation, translate, err, false); err != nil {
		return types.SessionConfig{}, err
	}

	if cfg.TranslationEnabled {
		models, lerr := w.catalog.TranslationModels(cfg.Provider.ID)
		if lerr != nil {
			return types.SessionConfig{}, fmt.Errorf("wizard %s: %w", StepTranslationModel, lerr)
		}
		model, err := w.askTranslationModel(models)
		if cfg.TranslationModel, err = settle(ctx, w, cfg.SessionID, StepTranslationModel, model, err, models[0].Value); err != nil {
			return types.SessionConfig{}, err
		}
	}

	save, err := w.askYesNo("step9_save_title", "step9_save_prompt", "save_yes", "save_no")
	if cfg.SaveEnabled, err = settle(ctx, w, cfg.SessionID, StepSave, save, err, false); err != nil {
		return types.SessionConfig{}, err
	}

	if cfg.SaveEnabled {
		formats, err := w.askFormats()
		if cfg.Formats, err = settle(ctx, w, cfg.SessionID, StepFormats, formats, err, []types.Format{types.FormatMarkdown}); err != nil {
			return types.SessionConfig{}, err
		}
	}

	logger.Info(ctx, "Wizard completed",
		"session_id", cfg.SessionID,
		"ticker", cfg.Ticker,
		"analysis_date", cfg.AnalysisDate,
		"provider", cfg.Provider.ID,
		"translation", cfg.TranslationEnabled,
		"save", cfg.SaveEnabled,
	)
	return cfg, nil
}

// settle applies the cancellation policy of step to an answer.
func settle[T any](ctx context.Context, w *Wizard, sessionID string, step Step, o Outcome[T], err error, fallback T) (T, error) {
	var zero T
	if err != nil {
		logger.ErrorWithErr(ctx, "Wizard step failed", err, "session_id", sessionID, "step", step.String())
		return zero, fmt.Errorf("wizard %s: %w", step, err)
	}
	if v, ok := o.Value(); ok {
		logger.Step(ctx, sessionID, step.String(), "completed")
		return v, nil
	}

	p, ok := w.policies[step]
	if !ok || p.Abort {
		key := p.Key
		if key == "" {
			key = "error_" + step.String()
		}
		logger.Step(ctx, sessionID, step.String(), "aborted", "key", key)
		return zero, &AbortError{Step: step, Key: key}
	}

	logger.Step(ctx, sessionID, step.String(), "defaulted", "key", p.Key)
	if p.Key != "" {
		if p.Announce {
			w.out.Warn(w.loc.Tf(p.Key, fallback))
		} else {
			w.out.Warn(w.loc.T(p.Key))
		}
	}
	return fallback, nil
}

func (w *Wizard) chooseLanguage(ctx context.Context, sessionID string) error {
	if w.locale != "" {
		w.loc.Init(w.locale)
		logger.Step(ctx, sessionID, StepLanguage.String(), "preset", "locale", string(w.loc.Locale()))
		return nil
	}
	lang, err := w.askLanguage()
	choice, err := settle(ctx, w, sessionID, StepLanguage, lang, err, string(i18n.DefaultLocale))
	if err != nil {
		return err
	}
	w.loc.Init(choice)
	return nil
}

func (w *Wizard) welcome() {
	w.out.Title(w.loc.T("welcome_title"))
	w.out.Line(w.loc.T("welcome_subtitle"))
	w.out.Line("")
	w.out.Line(w.loc.T("workflow_steps"))
	w.out.Line(w.loc.T("workflow_description"))
	w.out.Line("")
	w.out.Line(w.loc.T("built_by"))
}

// translate resolves option labels that are message keys.
func (w *Wizard) translate(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = w.loc.T(k)
	}
	return out
}

func (w *Wizard) analystNames(analysts []types.Analyst) string {
	names := make([]string, 0, len(analysts))
	for _, o := range w.catalog.Analysts() {
		for _, a := range analysts {
			if a == o.Value {
				names = append(names, w.loc.T(o.Label))
			}
		}
	}
	return strings.Join(names, ", ")
}

func (w *Wizard) askLanguage() (Outcome[string], error) {
	w.out.Title(w.loc.T("language_selection_title"))
	langs := w.catalog.Languages()
	idx, err := w.prompter.Select(w.loc.T("language_selection_prompt"), w.translate(catalog.Labels(langs)), 0)
	if out, done, err := cancelledOr[string](err); done {
		return out, err
	}
	return pick(langs, idx)
}

func (w *Wizard) askTicker() (Outcome[string], error) {
	w.out.Title(w.loc.T("step1_ticker_title"))
	for {
		s, err := w.prompter.Input(w.loc.T("step1_ticker_prompt"))
		if out, done, err := cancelledOr[string](err); done {
			return out, err
		}
		t, ok := NormalizeTicker(s)
		if !ok {
			return Cancelled[string](), nil
		}
		if ValidTicker(t) {
			return Completed(t), nil
		}
		w.out.Error(w.loc.T("error_invalid_ticker"))
	}
}

func (w *Wizard) askDate() (Outcome[string], error) {
	w.out.Title(w.loc.T("step2_date_title"))
	for {
		s, err := w.prompter.Input(w.loc.T("step2_date_prompt"))
		if out, done, err := cancelledOr[string](err); done {
			return out, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return Cancelled[string](), nil
		}
		if ValidDate(s) {
			return Completed(s), nil
		}
		w.out.Error(w.loc.T("error_invalid_date"))
	}
}

func (w *Wizard) askAnalysts() (Outcome[[]types.Analyst], error) {
	w.out.Title(w.loc.T("step3_analysts_title"))
	opts := w.catalog.Analysts()
	for {
		idx, err := w.prompter.MultiSelect(w.loc.T("step3_analysts_prompt"), w.translate(catalog.Labels(opts)))
		if out, done, err := cancelledOr[[]types.Analyst](err); done {
			return out, err
		}
		if len(idx) == 0 {
			w.out.Error(w.loc.T("error_select_analyst"))
			continue
		}
		selected := make([]types.Analyst, 0, len(idx))
		for _, i := range idx {
			if i < 0 || i >= len(opts) {
				return Cancelled[[]types.Analyst](), fmt.Errorf("analyst index %d out of range", i)
			}
			selected = append(selected, opts[i].Value)
		}
		return Completed(selected), nil
	}
}

func (w *Wizard) askDepth() (Outcome[int], error) {
	w.out.Title(w.loc.T("step4_depth_title"))
	opts := w.catalog.Depths()
	idx, err := w.prompter.Select(w.loc.T("step4_depth_prompt"), w.translate(catalog.Labels(opts)), 0)
	if out, done, err := cancelledOr[int](err); done {
		return out, err
	}
	return pick(opts, idx)
}

func (w *Wizard) askProvider() (Outcome[types.Provider], error) {
	w.out.Title(w.loc.T("step5_provider_title"))
	opts := w.catalog.Providers()
	idx, err := w.prompter.Select(w.loc.T("step5_provider_prompt"), catalog.Labels(opts), 0)
	if out, done, err := cancelledOr[types.Provider](err); done {
		return out, err
	}
	return pick(opts, idx)
}

func (w *Wizard) askModel(promptKey string, table func(string) ([]catalog.Option[string], error), provider string) (Outcome[string], error) {
	opts, err := table(provider)
	if err != nil {
		return Cancelled[string](), err
	}
	idx, err := w.prompter.Select(w.loc.T(promptKey), catalog.Labels(opts), 0)
	if out, done, err := cancelledOr[string](err); done {
		return out, err
	}
	return pick(opts, idx)
}

func (w *Wizard) askYesNo(titleKey, promptKey, yesKey, noKey string) (Outcome[bool], error) {
	w.out.Title(w.loc.T(titleKey))
	idx, err := w.prompter.Select(w.loc.T(promptKey), []string{w.loc.T(yesKey), w.loc.T(noKey)}, 0)
	if out, done, err := cancelledOr[bool](err); done {
		return out, err
	}
	return pick([]catalog.Option[bool]{{Label: yesKey, Value: true}, {Label: noKey, Value: false}}, idx)
}

func (w *Wizard) askTranslationModel(opts []catalog.Option[string]) (Outcome[string], error) {
	w.out.Title(w.loc.T("step8_translation_llm_title"))
	idx, err := w.prompter.Select(w.loc.T("step8_translation_llm_prompt"), catalog.Labels(opts), 0)
	if out, done, err := cancelledOr[string](err); done {
		return out, err
	}
	return pick(opts, idx)
}

func (w *Wizard) askFormats() (Outcome[[]types.Format], error) {
	w.out.Title(w.loc.T("step10_format_title"))
	opts := w.catalog.Formats()
	idx, err := w.prompter.Select(w.loc.T("step10_format_prompt"), w.translate(catalog.Labels(opts)), 0)
	if out, done, err := cancelledOr[[]types.Format](err); done {
		return out, err
	}
	choice, err := pick(opts, idx)
	if err != nil {
		return Cancelled[[]types.Format](), err
	}
	v, _ := choice.Value()
	return Completed([]types.Format(v)), nil
}

// cancelledOr turns a prompter error into an outcome. done is false when
// the prompt returned an answer to be processed.
func cancelledOr[T any](err error) (Outcome[T], bool, error) {
	switch {
	case err == nil:
		return Outcome[T]{}, false, nil
	case errors.Is(err, interfaces.ErrCancelled):
		return Cancelled[T](), true, nil
	default:
		return Cancelled[T](), true, err
	}
}

func pick[T any](opts []catalog.Option[T], idx int) (Outcome[T], error) {
	if idx < 0 || idx >= len(opts) {
		return Cancelled[T](), fmt.Errorf("choice %d out of range", idx)
	}
	return Completed(opts[idx].Value), nil
}
