package report

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts a Markdown body to an HTML fragment.
type Renderer interface {
	Render(markdown string) (string, error)
}

// GoldmarkRenderer supports GFM tables, fenced code and turns single
// newlines into <br>. Raw HTML in the body is passed through.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
			goldmark.WithRendererOptions(
				goldmarkhtml.WithHardWraps(),
				goldmarkhtml.WithUnsafe(),
			),
		),
	}
}

func (g *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// LazyRenderer builds its converter on first use and reuses it. A failed
// build is remembered and returned by every call.
type LazyRenderer struct {
	once  sync.Once
	build func() (Renderer, error)
	r     Renderer
	err   error
}

func NewLazyRenderer(build func() (Renderer, error)) *LazyRenderer {
	return &LazyRenderer{build: build}
}

// DefaultRenderer is a lazily constructed GoldmarkRenderer.
func DefaultRenderer() *LazyRenderer {
	return NewLazyRenderer(func() (Renderer, error) {
		return NewGoldmarkRenderer(), nil
	})
}

func (l *LazyRenderer) Render(markdown string) (string, error) {
	l.once.Do(func() {
		l.r, l.err = l.build()
		if l.err == nil && l.r == nil {
			l.err = fmt.Errorf("renderer factory returned nil")
		}
	})
	if l.err != nil {
		return "", fmt.Errorf("markdown renderer unavailable: %w", l.err)
	}
	return l.r.Render(markdown)
}
