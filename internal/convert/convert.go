// Copyright Fadilla Wahyudi, 2026. All rights reserved.

// Package convert turns one Day One JSON export into a single self-contained
// HTML document: normalized Markdown per entry, localized timestamps,
// weather and location lines, resolved media, a linked table of contents,
// and a fixed Bootstrap page shell.
package convert

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/internal/markdown"
	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/internal/media"
	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

// Converter drives one conversion run. The Markdown renderer and timezone
// loader are injected so tests can substitute deterministic fakes.
type Converter struct {
	cfg      types.ConvertConfig
	renderer markdown.Renderer
	resolver *media.Resolver
	zones    ZoneLoader
}

// New builds a Converter over cfg using the given Markdown renderer.
func New(cfg types.ConvertConfig, r markdown.Renderer) *Converter {
	return &Converter{
		cfg:      cfg,
		renderer: r,
		resolver: media.NewResolver(cfg),
		zones:    time.LoadLocation,
	}
}

// ConvertFile reads the export at jsonPath, renders every entry in order,
// and writes the assembled document to the configured output path in one
// atomic step. The run summary and the output location go to w.
func (c *Converter) ConvertFile(jsonPath string, w io.Writer) (*Result, error) {
	journal, err := LoadJournal(jsonPath)
	if err != nil {
		return nil, err
	}
	res, doc, err := c.Convert(journal)
	if err != nil {
		return nil, err
	}
	if err := writeFileAtomic(c.cfg.Output, []byte(doc)); err != nil {
		return nil, fmt.Errorf("writing %s: %w", c.cfg.Output, err)
	}
	res.Output = c.cfg.Output
	fmt.Fprintln(w, res.Summary())
	fmt.Fprintf(w, "Journal exported to %s\n", c.cfg.Output)
	return res, nil
}

// Convert runs the pipeline over an in-memory journal and returns the run
// result plus the complete document. Entries are processed strictly in
// order; a renderer failure aborts the run with the entry position wrapped
// into the error.
func (c *Converter) Convert(journal *types.Journal) (*Result, string, error) {
	var (
		entriesHTML strings.Builder
		tocHTML     strings.Builder
		res         = &Result{Entries: len(journal.Entries)}
	)

	for i, e := range journal.Entries {
		index := i + 1
		meta := resolveMeta(e, index, c.zones)

		body, err := c.renderer.Render(markdown.Normalize(strings.TrimSpace(e.Text)))
		if err != nil {
			return nil, "", fmt.Errorf("rendering entry %d: %w", index, err)
		}

		views, skipped := buildMediaViews(e, c.resolver)

		fragment, err := renderEntry(entryView{
			Index:        index,
			DisplayDate:  meta.DisplayDate,
			MapsURL:      meta.MapsURL,
			LocationText: meta.LocationText,
			WeatherLine:  meta.WeatherLine,
			Body:         template.HTML(body),
			Media:        views,
		})
		if err != nil {
			return nil, "", err
		}
		entriesHTML.WriteString(fragment)

		line, err := renderTOCLine(tocView{
			Index:       index,
			DisplayDate: meta.DisplayDate,
			Preview:     meta.Preview,
		})
		if err != nil {
			return nil, "", err
		}
		tocHTML.WriteString(line)

		res.track(e, index, meta, views, skipped)
	}

	doc, err := renderPage(pageView{
		DateRange: res.DateRange(),
		TOC:       template.HTML(tocHTML.String()),
		Entries:   template.HTML(entriesHTML.String()),
	})
	if err != nil {
		return nil, "", err
	}
	return res, doc, nil
}

// writeFileAtomic writes data to path through a temp file in the same
// directory, renamed into place on success. A failed run leaves no partial
// document at path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".journal-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
