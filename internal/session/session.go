// Package session drives one CLI run: the wizard, the English report, the
// optional translation and the optional publish, then records the outcome in
// the session log.
package session

import (
	"context"
	"errors"
	"fmt"

	"tradingagents/internal/i18n"
	"tradingagents/internal/interfaces"
	"tradingagents/internal/logger"
	"tradingagents/internal/report"
	"tradingagents/internal/sessionlog"
	"tradingagents/internal/store"
	"tradingagents/internal/trace"
	"tradingagents/internal/translator"
	"tradingagents/internal/types"
	"tradingagents/internal/ui"
	"tradingagents/internal/wizard"
)

// Configurer produces the session configuration, normally *wizard.Wizard.
type Configurer interface {
	Run(ctx context.Context) (types.SessionConfig, error)
}

// Recorder stores a finished session, normally *sessionlog.Log.
type Recorder interface {
	Append(e sessionlog.Entry) error
}

type Deps struct {
	Config    *store.Config
	Wizard    Configurer
	Source    interfaces.ReportSource
	Localizer *i18n.Localizer
	Console   *ui.Console
	// Translators builds the backend for the model chosen in the wizard.
	Translators func(ctx context.Context, cfg types.SessionConfig) interfaces.Translator
	// Publishers builds the publisher for a session's output directory.
	Publishers func(cfg types.SessionConfig) interfaces.Publisher
	Log        Recorder
}

type Result struct {
	Config     types.SessionConfig
	Analysis   types.AnalysisConfig
	English    string
	Translated string
	Saved      types.SavedFiles
}

type Runner struct {
	d Deps
}

func New(d Deps) *Runner {
	if d.Config == nil {
		d.Config = store.Default()
	}
	return &Runner{d: d}
}

// Run executes the session. Wizard aborts and publish failures are
// returned, as is a missing report when it was to be saved. Translation
// failures only downgrade the output to English.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	ctx, span := trace.StartSpan(ctx, "session.Run")
	defer span.End()

	loc, out := r.d.Localizer, r.d.Console

	cfg, err := r.d.Wizard.Run(ctx)
	if err != nil {
		var abort *wizard.AbortError
		if errors.As(err, &abort) {
			out.Error(loc.T(abort.Key))
		}
		return Result{}, err
	}

	res := Result{Config: cfg, Analysis: AnalysisConfig(r.d.Config, cfg)}
	logger.Info(ctx, "Analysis configuration",
		"session_id", cfg.SessionID,
		"provider", res.Analysis.LLMProvider,
		"backend_url", res.Analysis.BackendURL,
		"max_debate_rounds", res.Analysis.MaxDebateRounds,
	)

	if !cfg.SaveEnabled && !cfg.TranslationEnabled {
		out.Info(loc.T("report_not_saved"))
		r.record(ctx, res, nil)
		return res, nil
	}

	out.Line("")
	out.Info(loc.Tf("analyzing", cfg.Ticker))
	res.English, err = r.d.Source.Fetch(ctx, cfg)
	if err != nil {
		err = fmt.Errorf("report source: %w", err)
		if !cfg.SaveEnabled {
			logger.Warn(ctx, "Report unavailable, nothing to translate", "session_id", cfg.SessionID, "error", err)
			out.Warn(loc.T("warning_report_source"))
			out.Info(loc.T("report_not_saved"))
			r.record(ctx, res, err)
			return res, nil
		}
		out.Error(loc.T("error_report_source"))
		r.record(ctx, res, err)
		return res, err
	}

	if cfg.TranslationEnabled {
		res.Translated = r.translate(ctx, cfg, res.English)
	}

	if !cfg.SaveEnabled {
		out.Info(loc.T("report_not_saved"))
		r.record(ctx, res, nil)
		return res, nil
	}

	out.Info(loc.T("saving_report"))
	res.Saved, err = r.d.Publishers(cfg).Publish(ctx, types.ReportBundle{
		English:    res.English,
		Translated: res.Translated,
		Config:     cfg.Clone(),
	})
	if err != nil {
		err = fmt.Errorf("publish: %w", err)
		out.Error(loc.T("error_publish_failed"))
		r.record(ctx, res, err)
		return res, err
	}

	out.Success(loc.T("report_saved"))
	for _, p := range res.Saved {
		out.Line(loc.Tf("report_saved_at", p))
	}
	r.record(ctx, res, nil)
	return res, nil
}

// translate returns the Chinese report, or "" after warning the operator.
// Sectioned sources are translated one section at a time and recomposed
// under localized headings.
func (r *Runner) translate(ctx context.Context, cfg types.SessionConfig, english string) string {
	loc, out := r.d.Localizer, r.d.Console
	out.Info(loc.T("translation_in_progress"))

	svc := translator.New(r.d.Translators(ctx, cfg), r.d.Config.Translation.RequestsPerMinute)

	var (
		text string
		err  error
	)
	if ss, ok := r.d.Source.(interfaces.SectionSource); ok {
		var sections []types.Section
		if sections, err = ss.FetchSections(ctx, cfg); err == nil {
			if sections, err = svc.TranslateSections(ctx, sections); err == nil {
				zh := loc.For(i18n.Chinese)
				text = report.ComposeSections(sections, zh.T)
			}
		} else if errors.Is(err, report.ErrNotSectioned) {
			text, err = svc.Translate(ctx, english)
		}
	} else {
		text, err = svc.Translate(ctx, english)
	}

	if err != nil {
		logger.Warn(ctx, "Translation failed, publishing English only",
			"session_id", cfg.SessionID,
			"model", cfg.TranslationModel,
			"error", err,
		)
		out.Warn(loc.T("error_translation_failed"))
		return ""
	}
	out.Success(loc.T("translation_completed"))
	return text
}

func (r *Runner) record(ctx context.Context, res Result, runErr error) {
	if r.d.Log == nil {
		return
	}
	e := sessionlog.Entry{
		SessionID:  res.Config.SessionID,
		Config:     res.Config,
		Analysis:   res.Analysis,
		Translated: res.Translated != "",
		SavedFiles: res.Saved,
	}
	if runErr != nil {
		e.Error = runErr.Error()
	}
	if err := r.d.Log.Append(e); err != nil {
		logger.Warn(ctx, "Failed to append session log", "error", err)
	}
}

// ExitCode maps the result of Run to the process status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// AnalysisConfig builds the pipeline configuration for a session from the
// file defaults and the wizard answers.
func AnalysisConfig(c *store.Config, s types.SessionConfig) types.AnalysisConfig {
	if c == nil {
		c = store.Default()
	}
	a := types.AnalysisConfig{
		Ticker:               s.Ticker,
		AnalysisDate:         s.AnalysisDate,
		ResultsDir:           c.ResultsDir,
		LLMProvider:          s.Provider.ID,
		BackendURL:           s.Provider.URL,
		QuickThinkLLM:        s.QuickThinkModel,
		DeepThinkLLM:         s.DeepThinkModel,
		MaxDebateRounds:      s.ResearchDepth,
		MaxRiskDiscussRounds: s.ResearchDepth,
		MaxRecurLimit:        c.LLM.MaxRecurLimit,
		OnlineTools:          c.LLM.OnlineTools,
		Analysts:             append([]types.Analyst(nil), s.Analysts...),
	}
	if a.LLMProvider == "" {
		a.LLMProvider = c.LLM.Provider
	}
	if a.BackendURL == "" {
		a.BackendURL = c.LLM.BackendURL
	}
	if a.QuickThinkLLM == "" {
		a.QuickThinkLLM = c.LLM.QuickThinkLLM
	}
	if a.DeepThinkLLM == "" {
		a.DeepThinkLLM = c.LLM.DeepThinkLLM
	}
	return a
}
