package catalog

import "tradingagents/internal/types"

// Provider ids.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderGoogle     = "google"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

// Default returns the catalog shipped with the CLI.
func Default() *Catalog {
	return &Catalog{
		analysts: []Option[types.Analyst]{
			{"analyst_market", types.AnalystMarket},
			{"analyst_social", types.AnalystSocial},
			{"analyst_news", types.AnalystNews},
			{"analyst_fundamentals", types.AnalystFundamentals},
		},
		depths: []Option[int]{
			{"depth_shallow", 1},
			{"depth_medium", 3},
			{"depth_deep", 5},
		},
		providers: []Option[types.Provider]{
			{"OpenAI", types.Provider{Name: "OpenAI", ID: ProviderOpenAI, URL: "https://api.openai.com/v1"}},
			{"Anthropic", types.Provider{Name: "Anthropic", ID: ProviderAnthropic, URL: "https://api.anthropic.com/"}},
			{"Google", types.Provider{Name: "Google", ID: ProviderGoogle, URL: "https://generativelanguage.googleapis.com/v1"}},
			{"Openrouter", types.Provider{Name: "Openrouter", ID: ProviderOpenRouter, URL: "https://openrouter.ai/api/v1"}},
			{"Ollama", types.Provider{Name: "Ollama", ID: ProviderOllama, URL: "http://localhost:11434/v1"}},
		},
		shallowModels: map[string][]Option[string]{
			ProviderOpenAI: {
				{"GPT-5 - Latest flagship model, best overall performance", "gpt-5"},
				{"GPT-5 Mini - Balanced performance and cost (Recommended)", "gpt-5-mini"},
				{"GPT-5 Nano - Most cost-efficient for simple tasks", "gpt-5-nano"},
				{"GPT-5 Chat Latest - Latest conversational model", "gpt-5-chat-latest"},
				{"GPT-4o - Previous generation, still powerful", "gpt-4o"},
				{"GPT-4o-mini - Cost-effective legacy model", "gpt-4o-mini"},
				{"GPT-4.1-nano - Ultra-lightweight legacy model", "gpt-4.1-nano"},
				{"GPT-4.1-mini - Compact legacy model", "gpt-4.1-mini"},
			},
			ProviderAnthropic: {
				{"Claude Haiku 3.5 - Fast inference and standard capabilities", "claude-3-5-haiku-latest"},
				{"Claude Sonnet 3.5 - Highly capable standard model", "claude-3-5-sonnet-latest"},
				{"Claude Sonnet 3.7 - Exceptional hybrid reasoning and agentic capabilities", "claude-3-7-sonnet-latest"},
				{"Claude Sonnet 4 - High performance and excellent reasoning", "claude-sonnet-4-0"},
			},
			ProviderGoogle: {
				{"Gemini 2.0 Flash-Lite - Cost efficiency and low latency", "gemini-2.0-flash-lite"},
				{"Gemini 2.0 Flash - Next generation features, speed, and thinking", "gemini-2.0-flash"},
				{"Gemini 2.5 Flash - Adaptive thinking, cost efficiency", "gemini-2.5-flash-preview-05-20"},
			},
			ProviderOpenRouter: {
				{"Meta: Llama 4 Scout", "meta-llama/llama-4-scout:free"},
				{"Meta: Llama 3.3 8B Instruct - A lightweight and ultra-fast variant of Llama 3.3 70B", "meta-llama/llama-3.3-8b-instruct:free"},
				{"google/gemini-2.0-flash-exp:free - Gemini Flash 2.0 offers a significantly faster time to first token", "google/gemini-2.0-flash-exp:free"},
			},
			ProviderOllama: {
				{"llama3.1 local", "llama3.1"},
				{"llama3.2 local", "llama3.2"},
			},
		},
		deepModels: map[string][]Option[string]{
			ProviderOpenAI: {
				{"o3-pro - Maximum intelligence, best for high-stakes decisions", "o3-pro"},
				{"o3 - High-performance reasoning for math, science, coding", "o3"},
				{"o4-mini - Fast, cost-efficient reasoning (Recommended)", "o4-mini"},
				{"GPT-5 - Latest flagship model, best overall performance", "gpt-5"},
				{"GPT-5 Mini - Balanced performance and cost", "gpt-5-mini"},
				{"o1 - Premier reasoning model (legacy)", "o1"},
				{"GPT-4o - Standard model with solid capabilities", "gpt-4o"},
				{"GPT-4.1-mini - Compact legacy model", "gpt-4.1-mini"},
				{"GPT-4.1-nano - Ultra-lightweight legacy model", "gpt-4.1-nano"},
			},
			ProviderAnthropic: {
				{"Claude Haiku 3.5 - Fast inference and standard capabilities", "claude-3-5-haiku-latest"},
				{"Claude Sonnet 3.5 - Highly capable standard model", "claude-3-5-sonnet-latest"},
				{"Claude Sonnet 3.7 - Exceptional hybrid reasoning and agentic capabilities", "claude-3-7-sonnet-latest"},
				{"Claude Sonnet 4 - High performance and excellent reasoning", "claude-sonnet-4-0"},
				{"Claude Opus 4 - Most powerful Anthropic model", "claude-opus-4-0"},
			},
			ProviderGoogle: {
				{"Gemini 2.0 Flash-Lite - Cost efficiency and low latency", "gemini-2.0-flash-lite"},
				{"Gemini 2.0 Flash - Next generation features, speed, and thinking", "gemini-2.0-flash"},
				{"Gemini 2.5 Flash - Adaptive thinking, cost efficiency", "gemini-2.5-flash-preview-05-20"},
				{"Gemini 2.5 Pro", "gemini-2.5-pro-preview-06-05"},
			},
			ProviderOpenRouter: {
				{"DeepSeek V3 - a 685B-parameter, mixture-of-experts model", "deepseek/deepseek-chat-v3-0324:free"},
				{"Deepseek - latest iteration of the flagship chat model family from the DeepSeek team.", "deepseek/deepseek-chat-v3-0324:free"},
			},
			ProviderOllama: {
				{"llama3.1 local", "llama3.1"},
				{"qwen3", "qwen3"},
			},
		},
		translationModels: map[string][]Option[string]{
			ProviderOpenAI: {
				{"GPT-5 Mini - Balanced performance and cost (Recommended)", "gpt-5-mini"},
				{"GPT-5 Nano - Most cost-efficient", "gpt-5-nano"},
				{"GPT-4o-mini - Cost-effective legacy model", "gpt-4o-mini"},
				{"GPT-5 - Best quality (higher cost)", "gpt-5"},
			},
			ProviderAnthropic: {
				{"Claude Haiku 3.5 - Fast and efficient (Recommended)", "claude-3-5-haiku-latest"},
				{"Claude Sonnet 3.5 - Higher quality", "claude-3-5-sonnet-latest"},
			},
			ProviderGoogle: {
				{"Gemini 2.0 Flash - Fast and efficient (Recommended)", "gemini-2.0-flash"},
				{"Gemini 2.0 Flash-Lite - Most economical", "gemini-2.0-flash-lite"},
			},
			ProviderOpenRouter: {
				{"Meta: Llama 3.3 8B - Fast and free", "meta-llama/llama-3.3-8b-instruct:free"},
				{"Google Gemini 2.0 Flash - Free tier", "google/gemini-2.0-flash-exp:free"},
			},
			ProviderOllama: {
				{"llama3.2 local", "llama3.2"},
				{"llama3.1 local", "llama3.1"},
			},
		},
		formats: []Option[FormatChoice]{
			{"format_markdown", FormatChoice{types.FormatMarkdown}},
			{"format_html", FormatChoice{types.FormatHTML}},
			{"format_both", FormatChoice{types.FormatMarkdown, types.FormatHTML}},
		},
		languages: []Option[string]{
			{"language_english", "en"},
			{"language_chinese", "zh"},
		},
	}
}
