package glossary

import (
	"path/filepath"
	"testing"

	"github.com/KristoR/andmed-et-en/internal/extract"
)

func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.yml")

	matches := []extract.TermMatch{
		{
			EN:      "neural network",
			ETHints: []string{"närvivõrk", "tehisnärvivõrk"},
			ThesisRefs: []extract.ThesisRef{
				{Title: "Närvivõrkude rakendused", URL: "https://dspace.ut.ee/handle/2", University: "ut"},
			},
		},
		{EN: "gradient descent", ETHints: []string{"gradientlaskumine"}},
		{EN: "hintless term"},
	}

	added, err := Seed(path, matches)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if added != 2 {
		t.Errorf("Expected 2 seeded terms, got %d", added)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(g.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(g.Entries))
	}

	first := g.Entries[0]
	if first.ET != "närvivõrk" {
		t.Errorf("Expected first hint as primary form, got %q", first.ET)
	}
	if first.Alt == nil || len(first.Alt.ET) != 1 || first.Alt.ET[0] != "tehisnärvivõrk" {
		t.Errorf("Expected remaining hints as alternates, got %+v", first.Alt)
	}
	if first.Definition != "" {
		t.Errorf("Expected empty definition on seeded entry, got %q", first.Definition)
	}
	if len(first.References) != 1 || first.References[0].URL != "https://dspace.ut.ee/handle/2" {
		t.Errorf("Expected thesis reference to carry over, got %+v", first.References)
	}
}

func TestSeedSkipsExistingTerms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.yml")

	matches := []extract.TermMatch{
		{EN: "neural network", ETHints: []string{"närvivõrk"}},
	}

	if _, err := Seed(path, matches); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}

	added, err := Seed(path, matches)
	if err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	if added != 0 {
		t.Errorf("Expected no duplicates on re-seed, got %d added", added)
	}
}
