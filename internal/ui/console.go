// Package ui prints the operator-facing lines of the interactive session.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorBold   = "\033[1m"
)

// Console writes tagged, optionally colored lines to w.
type Console struct {
	w     io.Writer
	color bool
}

// New returns a Console on w. Colors are used only when w is a terminal and
// NO_COLOR is unset.
func New(w io.Writer) *Console {
	color := false
	if f, ok := w.(*os.File); ok && os.Getenv("NO_COLOR") == "" {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{w: w, color: color}
}

// Plain returns a Console that never emits escape codes.
func Plain(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) paint(color, s string) string {
	if !c.color {
		return s
	}
	return color + s + colorReset
}

// Title prints a step heading followed by a rule.
func (c *Console) Title(s string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.paint(colorBold, s))
	fmt.Fprintln(c.w, strings.Repeat("─", max(len([]rune(s)), 20)))
}

func (c *Console) Line(s string) {
	fmt.Fprintln(c.w, s)
}

func (c *Console) Info(s string) {
	fmt.Fprintln(c.w, c.paint(colorBlue, "[INFO]")+" "+s)
}

func (c *Console) Success(s string) {
	fmt.Fprintln(c.w, c.paint(colorGreen, "[OK]")+" "+s)
}

func (c *Console) Warn(s string) {
	fmt.Fprintln(c.w, c.paint(colorYellow, "[WARN]")+" "+s)
}

func (c *Console) Error(s string) {
	fmt.Fprintln(c.w, c.paint(colorRed, "[ERROR]")+" "+s)
}
