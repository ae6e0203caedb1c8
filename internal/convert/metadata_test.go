// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

func f64(v float64) *float64 {
	return &v
}

func TestResolveMetaDates(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		timeZone string
		want     string
		wantTime bool
	}{
		{
			name:     "UTC timestamp localized to New York",
			date:     "2023-10-05T14:30:00Z",
			timeZone: "America/New_York",
			want:     "05 Oct 2023 10:30 AM",
			wantTime: true,
		},
		{
			name:     "no timezone stays UTC",
			date:     "2023-10-05T14:30:00Z",
			want:     "05 Oct 2023 02:30 PM",
			wantTime: true,
		},
		{
			name:     "unknown timezone stays UTC",
			date:     "2023-10-05T14:30:00Z",
			timeZone: "Not/AZone",
			want:     "05 Oct 2023 02:30 PM",
			wantTime: true,
		},
		{
			name:     "morning hour in 12-hour clock",
			date:     "2021-01-09T09:05:00Z",
			want:     "09 Jan 2021 09:05 AM",
			wantTime: true,
		},
		{
			name: "malformed timestamp passes through verbatim",
			date: "yesterday-ish",
			want: "yesterday-ish",
		},
		{
			name: "offset form is not the export format",
			date: "2023-10-05T14:30:00+02:00",
			want: "2023-10-05T14:30:00+02:00",
		},
		{
			name: "empty timestamp stays empty",
			date: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := types.Entry{CreationDate: tt.date, TimeZone: tt.timeZone}
			m := resolveMeta(e, 1, time.LoadLocation)
			if m.DisplayDate != tt.want {
				t.Errorf("DisplayDate = %q, want %q", m.DisplayDate, tt.want)
			}
			if (m.Instant != nil) != tt.wantTime {
				t.Errorf("Instant presence = %v, want %v", m.Instant != nil, tt.wantTime)
			}
		})
	}
}

// The zone loader is injectable; a loader that always fails must leave every
// parsed timestamp in UTC.
func TestResolveMetaZoneLoaderFailure(t *testing.T) {
	loader := func(string) (*time.Location, error) {
		return nil, errors.New("no tzdata here")
	}
	e := types.Entry{CreationDate: "2023-10-05T14:30:00Z", TimeZone: "America/New_York"}
	m := resolveMeta(e, 1, loader)
	if m.DisplayDate != "05 Oct 2023 02:30 PM" {
		t.Errorf("DisplayDate = %q, want UTC rendering", m.DisplayDate)
	}
}

func TestWeatherLine(t *testing.T) {
	tests := []struct {
		name    string
		weather *types.Weather
		want    string
	}{
		{
			name:    "temperature and conditions",
			weather: &types.Weather{TemperatureCelsius: f64(21.0), ConditionsDescription: "Clear"},
			want:    "21.0°C, Clear",
		},
		{
			name:    "temperature only",
			weather: &types.Weather{TemperatureCelsius: f64(21.0)},
			want:    "21.0°C",
		},
		{
			name:    "zero degrees still shows",
			weather: &types.Weather{TemperatureCelsius: f64(0)},
			want:    "0.0°C",
		},
		{
			name:    "negative temperature rounds to one decimal",
			weather: &types.Weather{TemperatureCelsius: f64(-3.25), ConditionsDescription: "Snow"},
			want:    "-3.2°C, Snow",
		},
		{
			name:    "conditions only",
			weather: &types.Weather{ConditionsDescription: "Cloudy"},
			want:    "Cloudy",
		},
		{
			name:    "empty snapshot",
			weather: &types.Weather{},
			want:    "",
		},
		{
			name: "absent weather",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weatherLine(tt.weather); got != tt.want {
				t.Errorf("weatherLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocationLine(t *testing.T) {
	tests := []struct {
		name     string
		loc      *types.Location
		wantURL  string
		wantText string
	}{
		{
			name: "full location",
			loc: &types.Location{
				Latitude:     f64(40.7128),
				Longitude:    f64(-74.006),
				PlaceName:    "Little Cafe",
				LocalityName: "New York",
				Country:      "United States",
			},
			wantURL:  "https://www.google.com/maps?q=40.7128,-74.006",
			wantText: "Little Cafe, New York, United States",
		},
		{
			name: "zero coordinates are real coordinates",
			loc: &types.Location{
				Latitude:  f64(0),
				Longitude: f64(0),
				Country:   "Ghana",
			},
			wantURL:  "https://www.google.com/maps?q=0,0",
			wantText: "Ghana",
		},
		{
			name: "empty name parts skipped",
			loc: &types.Location{
				Latitude:     f64(51.5),
				Longitude:    f64(-0.12),
				LocalityName: "London",
			},
			wantURL:  "https://www.google.com/maps?q=51.5,-0.12",
			wantText: "London",
		},
		{
			name: "missing longitude renders nothing",
			loc: &types.Location{
				Latitude:  f64(51.5),
				PlaceName: "Somewhere",
			},
		},
		{
			name: "names without coordinates render nothing",
			loc: &types.Location{
				PlaceName: "Somewhere",
				Country:   "Nowhere",
			},
		},
		{
			name: "absent location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, text := locationLine(tt.loc)
			if url != tt.wantURL {
				t.Errorf("mapsURL = %q, want %q", url, tt.wantURL)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		index int
		want  string
	}{
		{
			name:  "heading markers stripped",
			text:  "# A day to remember\nrest of the entry",
			index: 1,
			want:  "A day to remember",
		},
		{
			name:  "deep heading",
			text:  "### Notes\nmore",
			index: 1,
			want:  "Notes",
		},
		{
			name:  "plain first line kept",
			text:  "woke up early\nthen coffee",
			index: 2,
			want:  "woke up early",
		},
		{
			name:  "windows line endings",
			text:  "Title\r\nbody",
			index: 1,
			want:  "Title",
		},
		{
			name:  "empty text falls back to synthetic label",
			text:  "",
			index: 7,
			want:  "Entry 7",
		},
		{
			name:  "whitespace-only text falls back too",
			text:  "   \n\t\n",
			index: 3,
			want:  "Entry 3",
		},
		{
			name:  "bare heading marker leaves empty preview",
			text:  "## ",
			index: 1,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preview(tt.text, tt.index); got != tt.want {
				t.Errorf("preview(%q, %d) = %q, want %q", tt.text, tt.index, got, tt.want)
			}
		})
	}
}
