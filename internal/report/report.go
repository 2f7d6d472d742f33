// Package report writes the human-review outputs of an extraction run:
// a YAML file of glossary candidates and a console summary.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KristoR/andmed-et-en/internal/extract"
)

// HarvestWindow describes the date range the reported records came from.
type HarvestWindow struct {
	From  string `yaml:"from,omitempty"`
	Until string `yaml:"until,omitempty"`
}

// Candidates is the review file handed to glossary editors.
type Candidates struct {
	Generated     string              `yaml:"generated"`
	HarvestWindow *HarvestWindow      `yaml:"harvest_window,omitempty"`
	RecordCount   int                 `yaml:"record_count"`
	Missing       []extract.TermMatch `yaml:"missing_terms"`
	Novel         []extract.TermMatch `yaml:"novel_terms"`
}

// WriteCandidates writes the candidate YAML to path.
func WriteCandidates(path string, c Candidates) error {
	if c.Generated == "" {
		c.Generated = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal candidates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write candidates file %s: %w", path, err)
	}

	slog.Info("wrote candidate terms", "path", path,
		"missing", len(c.Missing), "novel", len(c.Novel))
	return nil
}

// ReadCandidates loads a previously written candidate YAML.
func ReadCandidates(path string) (*Candidates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var c Candidates
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse candidates file %s: %w", path, err)
	}
	return &c, nil
}

// PrintSummary writes a run summary to w.
func PrintSummary(w io.Writer, recordCount int, result extract.Result) {
	fmt.Fprintf(w, "\nProcessed %d thesis records\n", recordCount)
	fmt.Fprintf(w, "  confirmed in glossary: %d\n", len(result.Confirmed))
	fmt.Fprintf(w, "  missing from glossary: %d\n", len(result.Missing))
	fmt.Fprintf(w, "  novel candidates:      %d\n", len(result.Novel))

	printTop(w, "Top missing terms", result.Missing)
	printTop(w, "Top novel candidates", result.Novel)
}

func printTop(w io.Writer, heading string, matches []extract.TermMatch) {
	if len(matches) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", heading)
	limit := 10
	if len(matches) < limit {
		limit = len(matches)
	}
	for _, m := range matches[:limit] {
		fmt.Fprintf(w, "  %-40s %d theses\n", m.EN, m.Frequency)
	}
}
