// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns normalized Markdown into an HTML fragment. The production
// implementation wraps goldmark; tests substitute deterministic fakes.
type Renderer interface {
	Render(src string) (string, error)
}

// Goldmark renders Markdown with the extension set journal text relies on:
// tables, footnotes, and definition lists. Raw HTML passes through, since
// entries written in the app may embed it.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark builds the production renderer. One instance is safe to reuse
// across all entries of a conversion run.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Footnote,
				extension.DefinitionList,
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts src to an HTML fragment.
func (g *Goldmark) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
