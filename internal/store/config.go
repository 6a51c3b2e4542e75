package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tradingagents/internal/catalog"
)

type Config struct {
	ResultsDir              string `yaml:"results_dir"`
	LogDir                  string `yaml:"log_dir"`
	SessionLogRetentionDays int    `yaml:"session_log_retention_days"`
	LLM                     struct {
		Provider      string `yaml:"provider"`
		BackendURL    string `yaml:"backend_url"`
		QuickThinkLLM string `yaml:"quick_think_llm"`
		DeepThinkLLM  string `yaml:"deep_think_llm"`
		MaxRecurLimit int    `yaml:"max_recur_limit"`
		OnlineTools   bool   `yaml:"online_tools"`
	} `yaml:"llm"`
	Translation struct {
		Temperature       float32 `yaml:"temperature"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerMinute float64 `yaml:"requests_per_minute"`
	} `yaml:"translation"`
	Report struct {
		// Source is the English report to publish. May contain {ticker}
		// and {date}.
		Source string `yaml:"source"`
	} `yaml:"report"`
}

// Default returns the configuration used when no config file exists. An
// empty LogDir defers to TRADINGAGENTS_LOG_DIR.
func Default() *Config {
	var c Config
	c.ResultsDir = "./results"
	c.LLM.Provider = catalog.ProviderOpenAI
	c.LLM.BackendURL = "https://api.openai.com/v1"
	c.LLM.QuickThinkLLM = "gpt-5-mini"
	c.LLM.DeepThinkLLM = "o4-mini"
	c.LLM.MaxRecurLimit = 100
	c.LLM.OnlineTools = true
	c.Translation.TimeoutSeconds = 300
	return &c
}

func (c *Config) Validate() error {
	if c.ResultsDir == "" {
		return errors.New("results_dir cannot be empty")
	}
	if c.SessionLogRetentionDays < 0 {
		return fmt.Errorf("session_log_retention_days must be >= 0, got %d", c.SessionLogRetentionDays)
	}
	if c.LLM.MaxRecurLimit < 0 {
		return fmt.Errorf("llm.max_recur_limit must be >= 0, got %d", c.LLM.MaxRecurLimit)
	}
	if c.Translation.Temperature < 0 || c.Translation.Temperature > 2 {
		return fmt.Errorf("translation.temperature must be between 0-2, got %.2f", c.Translation.Temperature)
	}
	if c.Translation.TimeoutSeconds < 0 {
		return fmt.Errorf("translation.timeout_seconds must be >= 0, got %d", c.Translation.TimeoutSeconds)
	}
	if c.Translation.RequestsPerMinute < 0 {
		return fmt.Errorf("translation.requests_per_minute must be >= 0, got %.2f", c.Translation.RequestsPerMinute)
	}
	if _, err := catalog.Default().Provider(c.LLM.Provider); err != nil {
		return fmt.Errorf("llm.provider: %w", err)
	}
	return nil
}

// ReportDir is where a session's reports are published unless the operator
// names a directory.
func (c *Config) ReportDir(ticker, date string) string {
	return filepath.Join(c.ResultsDir, ticker, date, "reports")
}

// ReportSource is the configured report path, or the pipeline's complete
// report under results_dir when none is set.
func (c *Config) ReportSource() string {
	if c.Report.Source != "" {
		return c.Report.Source
	}
	return filepath.Join(c.ResultsDir, "{ticker}", "{date}", "reports", "complete_report.md")
}

// LoadConfig reads path over the defaults. A missing file is not an error.
// TRADINGAGENTS_RESULTS_DIR overrides results_dir.
func LoadConfig(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("TRADINGAGENTS_RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}
