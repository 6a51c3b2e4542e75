// tradingagents is the interactive front end of the TradingAgents analysis
// pipeline: it collects the session configuration, optionally translates the
// resulting report to Chinese and saves it as Markdown and HTML.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tradingagents/internal/catalog"
	"tradingagents/internal/i18n"
	"tradingagents/internal/prompt"
	"tradingagents/internal/report"
	"tradingagents/internal/session"
	"tradingagents/internal/sessionlog"
	"tradingagents/internal/types"
	"tradingagents/internal/ui"
	"tradingagents/internal/wizard"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	configPath string
	lang       string
	outputDir  string
	reportPath string
}

// reportedError has already been shown to the operator in their language.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func newRootCmd() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "tradingagents",
		Short: "Configure a TradingAgents analysis session and publish its report",
		Long: `tradingagents walks through the session setup (ticker, analysis date,
analysts, research depth, LLM provider and models), then optionally
translates the English report to Chinese and saves it as Markdown and/or
HTML.

API keys are read from the environment or a .env file:
  OPENAI_API_KEY, ANTHROPIC_API_KEY, GOOGLE_API_KEY, OPENROUTER_API_KEY`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "Path to config.yaml")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "Interface language (en, zh); skips the language question")
	root.PersistentFlags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for saved reports (default <results_dir>/<ticker>/<date>/reports)")
	root.PersistentFlags().StringVar(&opts.reportPath, "report", "", "English report to publish (.md or sections .yaml); may contain {ticker} and {date}")

	root.AddCommand(
		newPublishCmd(&opts),
		newVersionCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		ui.New(os.Stderr).Error(err.Error())
	}
	shutdownSystem()
	os.Exit(session.ExitCode(err))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tradingagents version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// environment is what every command needs after bootstrap.
type environment struct {
	deps session.Deps
	cat  *catalog.Catalog
}

func bootstrap(ctx context.Context, opts rootOptions) (*environment, error) {
	if err := initializeSystem(); err != nil {
		return nil, err
	}
	cfg, err := loadConfig(ctx, opts.configPath)
	if err != nil {
		return nil, err
	}
	cat, err := initializeCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if opts.lang != "" {
		if _, ok := i18n.ParseLocale(opts.lang); !ok {
			return nil, fmt.Errorf("unsupported language %q (want en or zh)", opts.lang)
		}
	}

	sessions := sessionlog.New(cfg.LogDir)
	compressOldLogs(ctx, sessions, cfg)

	source := cfg.ReportSource()
	if opts.reportPath != "" {
		source = opts.reportPath
	}

	loc := i18n.New(opts.lang)
	return &environment{
		cat: cat,
		deps: session.Deps{
			Config:      cfg,
			Source:      report.NewFileSource(source),
			Localizer:   loc,
			Console:     ui.New(os.Stdout),
			Translators: initializeTranslators(cfg),
			Publishers:  initializePublishers(cfg, opts.outputDir, loc),
			Log:         sessions,
		},
	}, nil
}

func runInteractive(ctx context.Context, opts rootOptions) error {
	env, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	var wopts []wizard.Option
	if opts.lang != "" {
		wopts = append(wopts, wizard.WithLocale(opts.lang))
	}
	env.deps.Wizard = wizard.New(prompt.New(), env.cat, env.deps.Localizer, env.deps.Console, wopts...)

	if _, err := session.New(env.deps).Run(ctx); err != nil {
		return reportedError{err}
	}
	return nil
}

// staticConfig stands in for the wizard when every answer comes from flags.
type staticConfig types.SessionConfig

func (s staticConfig) Run(ctx context.Context) (types.SessionConfig, error) {
	return types.SessionConfig(s).Clone(), nil
}

type publishOptions struct {
	ticker           string
	analysisDate     string
	formats          []string
	provider         string
	translationModel string
}

func newPublishCmd(root *rootOptions) *cobra.Command {
	var opts publishOptions

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish an existing report without the interactive wizard",
		Long: `Publish reads the English report (--report or report.source in config.yaml),
optionally translates it with --translate-with, and saves it in the
requested formats.`,
		Example: `  tradingagents publish --ticker NVDA --date 2024-05-01 --report results/NVDA.md --format md --format html
  tradingagents publish --ticker AAPL --date 2024-01-15 --translate-with anthropic`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), *root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ticker, "ticker", "", "Ticker symbol")
	cmd.Flags().StringVar(&opts.analysisDate, "date", "", "Analysis date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&opts.formats, "format", []string{"md"}, "Output formats: md, html (repeatable)")
	cmd.Flags().StringVar(&opts.provider, "translate-with", "", "Translate to Chinese with this provider (openai, anthropic, google, openrouter, ollama)")
	cmd.Flags().StringVar(&opts.translationModel, "translation-model", "", "Translation model (default: the provider's recommended model)")
	_ = cmd.MarkFlagRequired("ticker")
	_ = cmd.MarkFlagRequired("date")

	_ = cmd.RegisterFlagCompletionFunc("translate-with", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, p := range catalog.Default().Providers() {
			ids = append(ids, p.Value.ID)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runPublish(ctx context.Context, root rootOptions, opts publishOptions) error {
	env, err := bootstrap(ctx, root)
	if err != nil {
		return err
	}
	cfg, err := publishConfig(env.cat, root.lang, opts)
	if err != nil {
		return err
	}
	env.deps.Localizer.Init(cfg.Locale)
	env.deps.Wizard = staticConfig(cfg)

	if _, err := session.New(env.deps).Run(ctx); err != nil {
		return reportedError{err}
	}
	return nil
}

// publishConfig builds the session configuration from publish flags.
func publishConfig(cat *catalog.Catalog, lang string, opts publishOptions) (types.SessionConfig, error) {
	ticker, ok := wizard.NormalizeTicker(opts.ticker)
	if !ok {
		return types.SessionConfig{}, errors.New("--ticker is empty")
	}
	if !wizard.ValidTicker(ticker) {
		return types.SessionConfig{}, fmt.Errorf("--ticker %q contains a path separator", opts.ticker)
	}
	if !wizard.ValidDate(opts.analysisDate) {
		return types.SessionConfig{}, fmt.Errorf("--date %q is not a valid YYYY-MM-DD date", opts.analysisDate)
	}
	formats, err := parseFormats(opts.formats)
	if err != nil {
		return types.SessionConfig{}, err
	}
	locale, ok := i18n.ParseLocale(lang)
	if !ok {
		locale = i18n.DefaultLocale
	}

	cfg := types.SessionConfig{
		SessionID:    uuid.NewString(),
		Locale:       string(locale),
		Ticker:       ticker,
		AnalysisDate: opts.analysisDate,
		SaveEnabled:  true,
		Formats:      formats,
	}
	if opts.provider == "" {
		return cfg, nil
	}

	cfg.Provider, err = cat.Provider(opts.provider)
	if err != nil {
		return types.SessionConfig{}, err
	}
	cfg.TranslationEnabled = true
	cfg.TranslationModel = opts.translationModel
	if cfg.TranslationModel == "" {
		models, err := cat.TranslationModels(cfg.Provider.ID)
		if err != nil {
			return types.SessionConfig{}, err
		}
		cfg.TranslationModel = models[0].Value
	}
	return cfg, nil
}

// parseFormats accepts md/markdown, html and both, without duplicates, in
// publish order.
func parseFormats(in []string) ([]types.Format, error) {
	var md, html bool
	for _, f := range in {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "md", "markdown":
			md = true
		case "html":
			html = true
		case "both":
			md, html = true, true
		default:
			return nil, fmt.Errorf("unknown format %q (want md, html or both)", f)
		}
	}
	var out []types.Format
	if md {
		out = append(out, types.FormatMarkdown)
	}
	if html {
		out = append(out, types.FormatHTML)
	}
	if len(out) == 0 {
		out = []types.Format{types.FormatMarkdown}
	}
	return out, nil
}
