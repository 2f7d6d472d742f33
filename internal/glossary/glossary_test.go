package glossary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGlossary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terms.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write glossary file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeGlossary(t, `
- en: machine learning
  et: masinõpe
  alt:
    et: [masinõppimine]
    en: [ML]
  definition: Meetodite kogum, mis võimaldab arvutitel andmetest õppida.
- en: neural network
  et: närvivõrk
`)

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(g.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(g.Entries))
	}
	if g.Entries[0].Alt == nil || g.Entries[0].Alt.ET[0] != "masinõppimine" {
		t.Errorf("Expected alternate spelling to be parsed, got %+v", g.Entries[0].Alt)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing et",
			content: `
- en: machine learning
  et: ""
`,
		},
		{
			name: "missing en",
			content: `
- en: ""
  et: masinõpe
`,
		},
		{
			name: "duplicate en ignoring case",
			content: `
- en: Machine Learning
  et: masinõpe
- en: machine learning
  et: masinõppimine
`,
		},
		{
			name: "slug collision",
			content: `
- en: machine learning
  et: masinõpe
- en: machine study
  et: masinope
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeGlossary(t, tt.content)); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestExistingTermsIncludesAlternates(t *testing.T) {
	path := writeGlossary(t, `
- en: machine learning
  et: masinõpe
  alt:
    en: [ML, statistical learning]
`)

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	existing := g.ExistingTerms()
	for _, term := range []string{"machine learning", "ml", "statistical learning"} {
		if _, ok := existing[term]; !ok {
			t.Errorf("Expected %q in existing terms", term)
		}
	}
	if len(existing) != 3 {
		t.Errorf("Expected 3 existing terms, got %d", len(existing))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		term     string
		expected string
	}{
		{"masinõpe", "masinope"},
		{"närvivõrk", "narvivork"},
		{"süvaõpe", "suvaope"},
		{"žanrite klassifitseerimine", "zanrite-klassifitseerimine"},
		{"Andmete torustik", "andmete-torustik"},
		{"C++ programmeerimine", "c-programmeerimine"},
		{"  juhuslik   mets  ", "juhuslik-mets"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := Slugify(tt.term); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
