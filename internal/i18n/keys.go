package i18n

// keys lists every message id the CLI, wizard and publisher look up.
var keys = []string{
	"welcome_title",
	"welcome_subtitle",
	"welcome_description",
	"workflow_steps",
	"workflow_description",
	"built_by",
	"language_selection_title",
	"language_selection_prompt",
	"language_english",
	"language_chinese",
	"step1_ticker_title",
	"step1_ticker_prompt",
	"step2_date_title",
	"step2_date_prompt",
	"step3_analysts_title",
	"step3_analysts_prompt",
	"step4_depth_title",
	"step4_depth_prompt",
	"step5_provider_title",
	"step5_provider_prompt",
	"step6_thinking_title",
	"step6_quick_prompt",
	"step6_deep_prompt",
	"step7_translation_title",
	"step7_translation_prompt",
	"step8_translation_llm_title",
	"step8_translation_llm_prompt",
	"step9_save_title",
	"step9_save_prompt",
	"step10_format_title",
	"step10_format_prompt",
	"translation_yes",
	"translation_no",
	"save_yes",
	"save_no",
	"format_markdown",
	"format_html",
	"format_both",
	"depth_shallow",
	"depth_medium",
	"depth_deep",
	"analyst_market",
	"analyst_social",
	"analyst_news",
	"analyst_fundamentals",
	"selected_analysts",
	"selected_ticker",
	"selected_provider",
	"analysis_date",
	"analyzing",
	"translation_in_progress",
	"translation_completed",
	"saving_report",
	"report_saved",
	"report_saved_at",
	"report_not_saved",
	"report_market",
	"report_sentiment",
	"report_news",
	"report_fundamentals",
	"report_investment",
	"report_trader",
	"report_final",
	"report_header_title",
	"report_header_subtitle",
	"report_header_ticker",
	"report_header_ticker_symbol",
	"report_header_date",
	"report_header_generated",
	"report_header_language",
	"report_language_label",
	"report_footer_generated_by",
	"report_footer_built_by",
	"report_disclaimer",
	"error_no_ticker",
	"error_no_date",
	"error_invalid_date",
	"error_invalid_ticker",
	"error_no_analysts",
	"error_select_analyst",
	"error_no_depth",
	"error_no_provider",
	"error_no_shallow",
	"error_no_deep",
	"error_translation_failed",
	"error_report_source",
	"warning_report_source",
	"error_publish_failed",
	"warning_no_language",
	"warning_default_translation_model",
	"session_complete",
}

// Keys returns a copy of the message ids consumed by the application.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
