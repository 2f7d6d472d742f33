// Package glossary reads and writes the bilingual term glossary and
// generates its markdown site.
package glossary

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reference links a glossary entry to a source that uses the term.
type Reference struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Alternates holds accepted spellings beyond the primary pair.
type Alternates struct {
	ET []string `yaml:"et,omitempty" json:"et,omitempty"`
	EN []string `yaml:"en,omitempty" json:"en,omitempty"`
}

// Entry is one glossary term with its Estonian and English forms.
type Entry struct {
	EN         string      `yaml:"en" json:"en"`
	ET         string      `yaml:"et" json:"et"`
	Alt        *Alternates `yaml:"alt,omitempty" json:"alt,omitempty"`
	Definition string      `yaml:"definition,omitempty" json:"definition,omitempty"`
	References []Reference `yaml:"references,omitempty" json:"references,omitempty"`
	Example    string      `yaml:"example,omitempty" json:"example,omitempty"`
}

// Glossary is the parsed terms file.
type Glossary struct {
	Entries []Entry
	path    string
}

// Load reads and validates the glossary YAML at path.
func Load(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary %s: %w", path, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse glossary %s: %w", path, err)
	}

	g := &Glossary{Entries: entries, path: path}
	if err := g.validate(); err != nil {
		return nil, err
	}

	slog.Debug("loaded glossary", "path", path, "entries", len(entries))
	return g, nil
}

func (g *Glossary) validate() error {
	seenEN := map[string]int{}
	seenSlug := map[string]int{}
	for i, e := range g.Entries {
		if strings.TrimSpace(e.EN) == "" {
			return fmt.Errorf("glossary entry %d has an empty en field", i)
		}
		if strings.TrimSpace(e.ET) == "" {
			return fmt.Errorf("glossary entry %q has an empty et field", e.EN)
		}

		key := strings.ToLower(e.EN)
		if prev, ok := seenEN[key]; ok {
			return fmt.Errorf("duplicate glossary term %q (entries %d and %d)", e.EN, prev, i)
		}
		seenEN[key] = i

		slug := Slugify(e.ET)
		if prev, ok := seenSlug[slug]; ok {
			return fmt.Errorf("glossary entries %q and %q collide on slug %q",
				g.Entries[prev].EN, e.EN, slug)
		}
		seenSlug[slug] = i
	}
	return nil
}

// ExistingTerms returns every recognized English form, lowercased,
// including alternate spellings.
func (g *Glossary) ExistingTerms() map[string]struct{} {
	terms := make(map[string]struct{}, len(g.Entries))
	for _, e := range g.Entries {
		terms[strings.ToLower(e.EN)] = struct{}{}
		if e.Alt != nil {
			for _, alt := range e.Alt.EN {
				terms[strings.ToLower(alt)] = struct{}{}
			}
		}
	}
	return terms
}

// Save writes the glossary back to its source file.
func (g *Glossary) Save() error {
	data, err := yaml.Marshal(g.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal glossary: %w", err)
	}
	if err := os.WriteFile(g.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write glossary %s: %w", g.path, err)
	}
	return nil
}
