// Package prompt is the terminal implementation of interfaces.Prompter.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"tradingagents/internal/interfaces"
)

// Survey asks questions on a terminal through survey.
type Survey struct {
	opts []survey.AskOpt
}

var _ interfaces.Prompter = (*Survey)(nil)

// New returns a prompter on the process stdio.
func New() *Survey {
	return &Survey{opts: []survey.AskOpt{survey.WithStdio(os.Stdin, os.Stdout, os.Stderr)}}
}

func (s *Survey) Input(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer, s.opts...)
	return answer, cancelled(err)
}

func (s *Survey) Select(message string, options []string, defaultIndex int) (int, error) {
	q := &survey.Select{Message: message, Options: options}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		q.Default = defaultIndex
	}
	var idx int
	if err := survey.AskOne(q, &idx, s.opts...); err != nil {
		return -1, cancelled(err)
	}
	return idx, nil
}

func (s *Survey) MultiSelect(message string, options []string) ([]int, error) {
	var idx []int
	q := &survey.MultiSelect{Message: message, Options: options}
	if err := survey.AskOne(q, &idx, s.opts...); err != nil {
		return nil, cancelled(err)
	}
	return idx, nil
}

// cancelled maps interrupt and end of input onto interfaces.ErrCancelled.
func cancelled(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, terminal.InterruptErr), errors.Is(err, io.EOF):
		return interfaces.ErrCancelled
	default:
		return err
	}
}
