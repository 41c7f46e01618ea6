// Package fixtures bundles the local creator-profile table used for the
// first paint of a creator page before (or instead of) the remote lookup.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pensup/pensup/internal/models"
)

//go:embed creators.json
var creatorsJSON []byte

// Table is an id-indexed, read-only set of creator profiles.
type Table struct {
	byID map[string]models.CreatorProfile
}

// Load parses the embedded fixture table.
func Load() (*Table, error) {
	var profiles []models.CreatorProfile
	if err := json.Unmarshal(creatorsJSON, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse creator fixtures: %w", err)
	}

	byID := make(map[string]models.CreatorProfile, len(profiles))
	for _, profile := range profiles {
		byID[profile.ID] = profile
	}
	return &Table{byID: byID}, nil
}

// ByID returns a copy of the fixture for id, or nil when absent.
func (t *Table) ByID(id string) *models.CreatorProfile {
	profile, ok := t.byID[id]
	if !ok {
		return nil
	}
	return &profile
}

// IDs returns the ids of every bundled creator.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	return ids
}
