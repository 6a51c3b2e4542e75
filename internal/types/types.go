package types

import "slices"

type Analyst string

const (
	AnalystMarket       Analyst = "market"
	AnalystSocial       Analyst = "social"
	AnalystNews         Analyst = "news"
	AnalystFundamentals Analyst = "fundamentals"
)

type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// Report languages. English is always published; Chinese only when a
// translation is available.
const (
	LangEnglish = "en"
	LangChinese = "zh"
)

type Provider struct {
	Name string `json:"name"` // display name, e.g. "OpenAI"
	ID   string `json:"id"`   // lower-cased lookup key into provider-indexed catalogs
	URL  string `json:"url"`
}

// SessionConfig is the result of a completed wizard run. It is passed by
// value; Clone must be used before handing the slices to another owner.
type SessionConfig struct {
	SessionID          string    `json:"session_id"`
	Locale             string    `json:"locale"`
	Ticker             string    `json:"ticker"`
	AnalysisDate       string    `json:"analysis_date"`
	Analysts           []Analyst `json:"analysts"`
	ResearchDepth      int       `json:"research_depth"`
	Provider           Provider  `json:"provider"`
	QuickThinkModel    string    `json:"quick_think_model"`
	DeepThinkModel     string    `json:"deep_think_model"`
	TranslationEnabled bool      `json:"translation_enabled"`
	TranslationModel   string    `json:"translation_model,omitempty"`
	SaveEnabled        bool      `json:"save_enabled"`
	Formats            []Format  `json:"formats,omitempty"`
}

func (c SessionConfig) Clone() SessionConfig {
	c.Analysts = slices.Clone(c.Analysts)
	c.Formats = slices.Clone(c.Formats)
	return c
}

func (c SessionConfig) HasFormat(f Format) bool {
	return slices.Contains(c.Formats, f)
}

// ReportBundle is consumed once by a publisher. Translated is empty when
// translation was not requested or failed.
type ReportBundle struct {
	English    string
	Translated string
	Config     SessionConfig
}

// SavedFiles lists absolute paths in the order en-md, en-html, zh-md, zh-html.
type SavedFiles []string

// Section is one titled part of a report. Key is the localization key of
// its heading.
type Section struct {
	Key  string `json:"key"`
	Body string `json:"body"`
}

// AnalysisConfig is handed to the analysis pipeline for a session.
type AnalysisConfig struct {
	Ticker               string    `json:"ticker"`
	AnalysisDate         string    `json:"analysis_date"`
	ResultsDir           string    `json:"results_dir"`
	LLMProvider          string    `json:"llm_provider"`
	BackendURL           string    `json:"backend_url"`
	QuickThinkLLM        string    `json:"quick_think_llm"`
	DeepThinkLLM         string    `json:"deep_think_llm"`
	MaxDebateRounds      int       `json:"max_debate_rounds"`
	MaxRiskDiscussRounds int       `json:"max_risk_discuss_rounds"`
	MaxRecurLimit        int       `json:"max_recur_limit"`
	OnlineTools          bool      `json:"online_tools"`
	Analysts             []Analyst `json:"selected_analysts"`
}
