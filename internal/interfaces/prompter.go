package interfaces

import "errors"

// ErrCancelled is returned by a Prompter when the operator gave no answer
// (interrupt, escape or end of input).
var ErrCancelled = errors.New("prompt cancelled")

type Prompter interface {
	Input(message string) (string, error)
	// Select returns the index of the chosen option.
	Select(message string, options []string, defaultIndex int) (int, error)
	// MultiSelect returns the indexes of the chosen options in option order.
	MultiSelect(message string, options []string) ([]int, error)
}
