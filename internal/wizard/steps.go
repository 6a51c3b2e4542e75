package wizard

import "fmt"

// Step identifies one question of the wizard, in the order asked.
type Step int

const (
	StepLanguage Step = iota
	StepTicker
	StepDate
	StepAnalysts
	StepDepth
	StepProvider
	StepQuickModel
	StepDeepModel
	StepTranslation
	StepTranslationModel
	StepSave
	StepFormats
)

var stepNames = [...]string{
	StepLanguage:         "language",
	StepTicker:           "ticker",
	StepDate:             "analysis_date",
	StepAnalysts:         "analysts",
	StepDepth:            "research_depth",
	StepProvider:         "provider",
	StepQuickModel:       "quick_think_model",
	StepDeepModel:        "deep_think_model",
	StepTranslation:      "translation",
	StepTranslationModel: "translation_model",
	StepSave:             "save",
	StepFormats:          "formats",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// Outcome is the result of asking one step: either a completed value or a
// cancellation.
type Outcome[T any] struct {
	value     T
	completed bool
}

func Completed[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, completed: true}
}

func Cancelled[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Value returns the answer and whether the step completed.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.completed
}

// Policy decides what a cancelled step does to the session.
type Policy struct {
	Abort bool
	// Key is the error message key for aborting policies and the warning
	// key for defaulting ones. A defaulting policy with no key is silent.
	Key string
	// Announce appends the substituted default to the warning.
	Announce bool
}

func Abort(errorKey string) Policy {
	return Policy{Abort: true, Key: errorKey}
}

func Default(warningKey string) Policy {
	return Policy{Key: warningKey}
}

// DefaultAnnounced is Default, with the chosen value printed after the
// warning.
func DefaultAnnounced(warningKey string) Policy {
	return Policy{Key: warningKey, Announce: true}
}

// Policies is the cancellation table applied by the wizard.
var Policies = map[Step]Policy{
	StepLanguage:         Default("warning_no_language"),
	StepTicker:           Abort("error_no_ticker"),
	StepDate:             Abort("error_no_date"),
	StepAnalysts:         Abort("error_no_analysts"),
	StepDepth:            Abort("error_no_depth"),
	StepProvider:         Abort("error_no_provider"),
	StepQuickModel:       Abort("error_no_shallow"),
	StepDeepModel:        Abort("error_no_deep"),
	StepTranslation:      Default(""),
	StepTranslationModel: DefaultAnnounced("warning_default_translation_model"),
	StepSave:             Default(""),
	StepFormats:          Default(""),
}

// AbortError ends a session at a mandatory step. Key is the localized
// message to show the operator.
type AbortError struct {
	Step Step
	Key  string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("wizard aborted at %s: %s", e.Step, e.Key)
}
