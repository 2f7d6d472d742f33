package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected missing state file to yield empty state, got %v", err)
	}
	if len(s.Universities) != 0 {
		t.Errorf("Expected empty state, got %+v", s.Universities)
	}
	if got := s.LastHarvestDate("ut"); got != "" {
		t.Errorf("Expected empty date for unknown university, got %q", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "harvest.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s.Update("ut", "2024-03-01", []string{"col_1", "col_2"}, 42)
	s.Update("taltech", "2024-03-01", nil, 7)

	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := loaded.LastHarvestDate("ut"); got != "2024-03-01" {
		t.Errorf("Expected last harvest date 2024-03-01, got %q", got)
	}
	if got := loaded.Universities["ut"].RecordCount; got != 42 {
		t.Errorf("Expected record count 42, got %d", got)
	}
	if loaded.LastRun == "" {
		t.Error("Expected last run timestamp to be recorded")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harvest.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed state file, got nil")
	}
}
