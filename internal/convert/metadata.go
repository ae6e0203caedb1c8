// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

const (
	// creationLayout is the fixed timestamp pattern Day One writes: UTC
	// with a literal trailing Z.
	creationLayout = "2006-01-02T15:04:05Z"

	// displayLayout is the per-entry date line, e.g. "05 Oct 2023 10:30 AM".
	displayLayout = "02 Jan 2006 03:04 PM"

	// rangeLayout is the date-only form used in the page heading.
	rangeLayout = "02 Jan 2006"
)

// headingMarkers strips leading Markdown heading syntax from a preview line.
var headingMarkers = regexp.MustCompile(`^#+\s*`)

// ZoneLoader resolves an IANA timezone name. The production loader is
// time.LoadLocation; tests substitute fixed zones to stay deterministic.
type ZoneLoader func(name string) (*time.Location, error)

// entryMeta is the resolved display metadata for one entry. Metadata
// resolution never fails: malformed or absent fields degrade to verbatim or
// empty output so a single entry cannot abort the run.
type entryMeta struct {
	// DisplayDate is the localized timestamp, or the raw creationDate
	// verbatim when it does not parse.
	DisplayDate string

	// Instant is the parsed creation time carrying its display zone; nil
	// when parsing failed. Only non-nil instants join the date range.
	Instant *time.Time

	// WeatherLine is the "21.0°C, Clear" style conditions text, possibly
	// empty.
	WeatherLine string

	// MapsURL and LocationText form the location line. MapsURL is empty
	// unless both coordinates are present; LocationText may be empty even
	// when the link renders.
	MapsURL      string
	LocationText string

	// Preview is the table-of-contents label: the first text line without
	// heading markers, or "Entry N" when the entry has no text.
	Preview string
}

// resolveMeta extracts and formats the ancillary metadata of the entry at
// the given 1-based position.
func resolveMeta(e types.Entry, index int, zones ZoneLoader) entryMeta {
	m := entryMeta{
		DisplayDate: e.CreationDate,
		WeatherLine: weatherLine(e.Weather),
		Preview:     preview(e.Text, index),
	}
	m.MapsURL, m.LocationText = locationLine(e.Location)

	if t, err := time.Parse(creationLayout, e.CreationDate); err == nil {
		if e.TimeZone != "" {
			if loc, zerr := zones(e.TimeZone); zerr == nil {
				t = t.In(loc)
			}
		}
		m.Instant = &t
		m.DisplayDate = t.Format(displayLayout)
	}
	return m
}

// weatherLine renders the conditions snapshot. Temperature presence is
// pointer presence, so a measured 0 °C still shows.
func weatherLine(w *types.Weather) string {
	if w == nil {
		return ""
	}
	switch {
	case w.TemperatureCelsius != nil && w.ConditionsDescription != "":
		return fmt.Sprintf("%.1f°C, %s", *w.TemperatureCelsius, w.ConditionsDescription)
	case w.TemperatureCelsius != nil:
		return fmt.Sprintf("%.1f°C", *w.TemperatureCelsius)
	default:
		return w.ConditionsDescription
	}
}

// locationLine builds the map link and its display text. The link requires
// both coordinates; the text is the comma-joined non-empty subset of place,
// locality, and country.
func locationLine(l *types.Location) (mapsURL, text string) {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return "", ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{l.PlaceName, l.LocalityName, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	mapsURL = fmt.Sprintf("https://www.google.com/maps?q=%s,%s",
		strconv.FormatFloat(*l.Latitude, 'f', -1, 64),
		strconv.FormatFloat(*l.Longitude, 'f', -1, 64))
	return mapsURL, strings.Join(parts, ", ")
}

// preview derives the table-of-contents label from the first line of the
// entry text.
func preview(text string, index int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Sprintf("Entry %d", index)
	}
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = strings.TrimSpace(text[:i])
	}
	return headingMarkers.ReplaceAllString(line, "")
}
