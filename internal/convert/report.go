// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

// Result holds the metadata of one conversion run: counts, the computed
// date range, and per-entry rows for the optional report file.
type Result struct {
	// Output is the path the document was written to.
	Output string `json:"output" yaml:"output"`

	// Entries is the number of entries in the export.
	Entries int `json:"entries" yaml:"entries"`

	// Dated counts entries whose timestamp parsed and joined the range.
	Dated int `json:"dated" yaml:"dated"`

	// MediaFound and MediaSkipped count resolved files and references that
	// contributed nothing (no usable stem or no file on disk).
	MediaFound   int `json:"media_found" yaml:"media_found"`
	MediaSkipped int `json:"media_skipped" yaml:"media_skipped"`

	// Start and End are the earliest and latest parsed instants, carrying
	// their display zones; nil when no timestamp parsed.
	Start *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End   *time.Time `json:"end,omitempty" yaml:"end,omitempty"`

	// Rows describe each entry in output order.
	Rows []ReportRow `json:"rows" yaml:"rows"`
}

// ReportRow is the per-entry record of the run report.
type ReportRow struct {
	// ID is the entry UUID in canonical form. Entries without a parseable
	// UUID get a generated one so every row stays addressable.
	ID string `json:"id" yaml:"id"`

	// Anchor is the fragment identifier of the entry card in the document.
	Anchor string `json:"anchor" yaml:"anchor"`

	// Date is the display timestamp, or the raw value when unparsed.
	Date string `json:"date" yaml:"date"`

	// Title is the table-of-contents preview text.
	Title string `json:"title" yaml:"title"`

	// Photos, Videos, and Audios count resolved files per kind.
	Photos int `json:"photos" yaml:"photos"`
	Videos int `json:"videos" yaml:"videos"`
	Audios int `json:"audios" yaml:"audios"`
}

// track folds one processed entry into the result.
func (r *Result) track(e types.Entry, index int, meta entryMeta, views mediaViews, skipped int) {
	r.MediaFound += views.Count()
	r.MediaSkipped += skipped

	if t := meta.Instant; t != nil {
		r.Dated++
		if r.Start == nil || t.Before(*r.Start) {
			r.Start = t
		}
		if r.End == nil || t.After(*r.End) {
			r.End = t
		}
	}

	r.Rows = append(r.Rows, ReportRow{
		ID:     entryID(e.UUID),
		Anchor: fmt.Sprintf("entry%d", index),
		Date:   meta.DisplayDate,
		Title:  meta.Preview,
		Photos: len(views.Photos),
		Videos: len(views.Videos),
		Audios: len(views.Audios),
	})
}

// DateRange renders the heading fragment, "from 01 Jan 2020 to 05 Oct 2023",
// or the fixed fallback when no entry carried a parseable timestamp.
func (r *Result) DateRange() string {
	if r.Start == nil || r.End == nil {
		return "No date information"
	}
	return fmt.Sprintf("from %s to %s", r.Start.Format(rangeLayout), r.End.Format(rangeLayout))
}

// Summary is the one-line report printed after a successful run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Converted %d entries (%d dated, %d media files embedded, %d media references skipped)",
		r.Entries, r.Dated, r.MediaFound, r.MediaSkipped)
}

// WriteReport writes the run report to path in the given format.
func (r *Result) WriteReport(path string, format types.ReportFormat) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.ReportJSON:
		data, err = json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON report: %w", err)
		}
	case types.ReportYAML:
		data, err = yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling YAML report: %w", err)
		}
	default:
		return fmt.Errorf("unsupported report format %q: use yaml or json", format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// entryID canonicalizes a Day One entry UUID, which exports carry as 32 hex
// characters without dashes. An absent or malformed value gets a fresh UUID.
func entryID(raw string) string {
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
