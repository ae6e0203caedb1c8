// Copyright Fadilla Wahyudi, 2026. All rights reserved.

// Package types defines shared data structures for the conversion pipeline.
package types

// Journal is one Day One export document: an ordered list of entries.
// Entry order is preserved through conversion; the table of contents and
// the rendered body follow the order of this slice.
type Journal struct {
	Entries []Entry `json:"entries"`
}

// Entry is a single journal record. Every field is optional in the export;
// absent fields degrade the rendered output instead of failing conversion.
type Entry struct {
	// UUID is the Day One entry identifier, written by the app as 32 hex
	// characters. It only feeds the run report; anchors use entry position.
	UUID string `json:"uuid"`

	// Text is the raw Markdown body.
	Text string `json:"text"`

	// CreationDate is the entry timestamp, expected as
	// "2006-01-02T15:04:05Z" (UTC). Anything else is displayed verbatim.
	CreationDate string `json:"creationDate"`

	// TimeZone is an IANA zone name (e.g. "America/New_York") used to
	// localize the display time. Empty or unknown keeps UTC.
	TimeZone string `json:"timeZone"`

	// Location is the place the entry was written, if recorded.
	Location *Location `json:"location"`

	// Weather is the conditions snapshot, if recorded.
	Weather *Weather `json:"weather"`

	// Photos, Videos, and Audios reference media files exported alongside
	// the JSON document, resolved against the configured media directories.
	Photos []Media `json:"photos"`
	Videos []Media `json:"videos"`
	Audios []Media `json:"audios"`
}

// Location is a recorded place. Coordinates are pointers so that a true 0.0
// latitude or longitude is distinguishable from an absent one; the map link
// is emitted only when both are present.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// PlaceName, LocalityName, and Country form the display text; empty
	// parts are skipped when joining.
	PlaceName    string `json:"placeName"`
	LocalityName string `json:"localityName"`
	Country      string `json:"country"`
}

// Weather is a conditions snapshot. TemperatureCelsius is a pointer so 0 °C
// still renders.
type Weather struct {
	TemperatureCelsius    *float64 `json:"temperatureCelsius"`
	ConditionsDescription string   `json:"conditionsDescription"`
}

// Media references one exported photo, video, or audio file by filename stem.
// MD5 is preferred over Identifier when both are set; a ref with neither
// resolves to nothing.
type Media struct {
	MD5        string `json:"md5"`
	Identifier string `json:"identifier"`
}

// Filename returns the stem to look up on disk: the MD5 content hash when
// present, the opaque identifier otherwise. Empty means the ref is unusable.
func (m Media) Filename() string {
	if m.MD5 != "" {
		return m.MD5
	}
	return m.Identifier
}
