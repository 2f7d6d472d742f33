// Package state persists harvest progress between runs so incremental
// harvests can pick up where the last one stopped.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// UniversityState records what the last harvest saw for one repository.
type UniversityState struct {
	LastHarvestDate string   `json:"last_harvest_date"`
	Sets            []string `json:"sets,omitempty"`
	RecordCount     int      `json:"record_count"`
}

// State is the on-disk harvest state.
type State struct {
	Universities map[string]UniversityState `json:"universities"`
	LastRun      string                     `json:"last_run,omitempty"`
}

// Load reads the state file at path. A missing file yields an empty
// state so first runs need no setup.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &State{Universities: map[string]UniversityState{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	if s.Universities == nil {
		s.Universities = map[string]UniversityState{}
	}
	return &s, nil
}

// Update records a completed harvest for one university.
func (s *State) Update(university, untilDate string, sets []string, recordCount int) {
	s.Universities[university] = UniversityState{
		LastHarvestDate: untilDate,
		Sets:            sets,
		RecordCount:     recordCount,
	}
	s.LastRun = time.Now().UTC().Format(time.RFC3339)
}

// LastHarvestDate returns the stored date for a university, or "" when
// it has never been harvested.
func (s *State) LastHarvestDate(university string) string {
	return s.Universities[university].LastHarvestDate
}

// Save writes the state atomically next to path.
func (s *State) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp := path + ".tmp"
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
