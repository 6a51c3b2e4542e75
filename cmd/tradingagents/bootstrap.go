package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tradingagents/internal/catalog"
	"tradingagents/internal/i18n"
	"tradingagents/internal/interfaces"
	"tradingagents/internal/llm"
	"tradingagents/internal/logger"
	"tradingagents/internal/report"
	"tradingagents/internal/report/reportobs"
	"tradingagents/internal/sessionlog"
	"tradingagents/internal/store"
	"tradingagents/internal/trace"
	"tradingagents/internal/types"
)

// initializeSystem loads .env and starts the logger and tracer
func initializeSystem() error {
	// API keys usually live in .env
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

func shutdownSystem() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = trace.Shutdown(ctx)
	_ = logger.Shutdown()
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// initializeCatalog returns the option tables after checking that every
// provider is fully populated and every message has a translation.
func initializeCatalog(ctx context.Context) (*catalog.Catalog, error) {
	c := catalog.Default()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("option catalog: %w", err)
	}
	if missing := i18n.Check(); len(missing) > 0 {
		return nil, errors.New("missing translations: " + strings.Join(missing, ", "))
	}
	logger.Debug(ctx, "Option catalog validated", "providers", len(c.Providers()))
	return c, nil
}

// compressOldLogs compresses old session log files if retention is configured
func compressOldLogs(ctx context.Context, log *sessionlog.Log, cfg *store.Config) {
	if err := log.CompressOlder(cfg.SessionLogRetentionDays); err != nil {
		logger.Warn(ctx, "Failed to compress old session logs", "error", err)
	}
}

// initializeTranslators returns the factory the session uses once the
// translation model is known
func initializeTranslators(cfg *store.Config) func(context.Context, types.SessionConfig) interfaces.Translator {
	return func(ctx context.Context, s types.SessionConfig) interfaces.Translator {
		return llm.NewTranslatorOrNoop(ctx, llm.Settings{
			Provider:    s.Provider,
			Model:       s.TranslationModel,
			Temperature: cfg.Translation.Temperature,
			Timeout:     time.Duration(cfg.Translation.TimeoutSeconds) * time.Second,
		})
	}
}

// initializePublishers returns the publisher factory. outputDir wins over
// the per-session directory under results_dir.
func initializePublishers(cfg *store.Config, outputDir string, loc *i18n.Localizer) func(types.SessionConfig) interfaces.Publisher {
	renderer := report.DefaultRenderer()
	return func(s types.SessionConfig) interfaces.Publisher {
		dir := outputDir
		if dir == "" {
			dir = cfg.ReportDir(s.Ticker, s.AnalysisDate)
		}
		// Wrap with observability middleware
		return reportobs.Wrap(report.NewPublisher(dir, renderer, loc))
	}
}
