// Package prompttest provides a scripted interfaces.Prompter for tests.
package prompttest

import (
	"fmt"

	"tradingagents/internal/interfaces"
)

// Answer is one scripted reply. Which field is used depends on the prompt
// kind that consumes it.
type Answer struct {
	Text    string
	Index   int
	Indexes []int
	Err     error
}

func Text(s string) Answer { return Answer{Text: s} }
func Choose(i int) Answer { return Answer{Index: i} }
func Multi(idx ...int) Answer { return Answer{Indexes: idx} }
func Cancel() Answer { return Answer{Err: interfaces.ErrCancelled} }
func Fail(err error) Answer { return Answer{Err: err} }

// Script replays answers in order. Once exhausted every prompt is
// cancelled.
type Script struct {
	answers []Answer
	// Asked records every prompt message in order.
	Asked []string
	// Options records the option lists of Select and MultiSelect prompts.
	Options [][]string
}

var _ interfaces.Prompter = (*Script)(nil)

func New(answers ...Answer) *Script {
	return &Script{answers: answers}
}

// Remaining reports how many answers were not consumed.
func (s *Script) Remaining() int {
	return len(s.answers)
}

func (s *Script) next(message string) Answer {
	s.Asked = append(s.Asked, message)
	if len(s.answers) == 0 {
		return Cancel()
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *Script) Input(message string) (string, error) {
	a := s.next(message)
	return a.Text, a.Err
}

func (s *Script) Select(message string, options []string, defaultIndex int) (int, error) {
	s.Options = append(s.Options, options)
	a := s.next(message)
	if a.Err != nil {
		return -1, a.Err
	}
	if a.Index < 0 || a.Index >= len(options) {
		return -1, fmt.Errorf("scripted index %d out of range for %q", a.Index, message)
	}
	return a.Index, nil
}

func (s *Script) MultiSelect(message string, options []string) ([]int, error) {
	s.Options = append(s.Options, options)
	a := s.next(message)
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Indexes, nil
}
