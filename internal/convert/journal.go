// Copyright Fadilla Wahyudi, 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fadilla-wahyudi/DayOneJSONtoHTML/pkg/types"
)

// rawJournal mirrors the export's top level. Entries is a pointer so a
// document without an "entries" key is distinguishable from one with an
// empty list; only the former is malformed.
type rawJournal struct {
	Entries *[]types.Entry `json:"entries"`
}

// LoadJournal reads a Day One JSON export in full before any processing
// begins. A file that cannot be read or parsed is fatal, as is a document
// whose "entries" key is absent or null.
func LoadJournal(path string) (*types.Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal export: %w", err)
	}
	var raw rawJournal
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing journal export %s: %w", path, err)
	}
	if raw.Entries == nil {
		return nil, fmt.Errorf("journal export %s has no \"entries\" key", path)
	}
	return &types.Journal{Entries: *raw.Entries}, nil
}
