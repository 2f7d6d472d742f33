package glossary

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KristoR/andmed-et-en/internal/extract"
)

// Seed appends curated matches to the glossary file at path, creating it
// when absent. Each match becomes a skeleton entry: first Estonian hint
// as the primary form, remaining hints as alternates, thesis references
// carried over. Definitions are left empty for later enrichment. Matches
// without Estonian hints and terms already present are skipped.
func Seed(path string, matches []extract.TermMatch) (int, error) {
	var entries []Entry
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return 0, fmt.Errorf("failed to parse glossary %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to read glossary %s: %w", path, err)
	}

	existing := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		existing[strings.ToLower(e.EN)] = struct{}{}
	}

	added := 0
	for _, m := range matches {
		if len(m.ETHints) == 0 {
			slog.Debug("skipping match without Estonian form", "term", m.EN)
			continue
		}
		if _, ok := existing[strings.ToLower(m.EN)]; ok {
			continue
		}

		entry := Entry{EN: m.EN, ET: m.ETHints[0]}
		if len(m.ETHints) > 1 {
			entry.Alt = &Alternates{ET: m.ETHints[1:]}
		}
		for _, ref := range m.ThesisRefs {
			entry.References = append(entry.References, Reference{Title: ref.Title, URL: ref.URL})
		}

		entries = append(entries, entry)
		existing[strings.ToLower(m.EN)] = struct{}{}
		added++
	}

	if added == 0 {
		slog.Info("no new terms to seed", "path", path)
		return 0, nil
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal glossary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write glossary %s: %w", path, err)
	}

	slog.Info("seeded glossary", "path", path, "added", added, "total", len(entries))
	return added, nil
}
