package glossary

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Generate renders the glossary into a markdown site under dir: one page
// per term plus Estonian and English indexes. Pages whose content did
// not change are left untouched, and pages for removed terms are
// deleted.
func Generate(g *Glossary, dir string) error {
	termsDir := filepath.Join(dir, "terms")
	if err := os.MkdirAll(termsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}

	wanted := make(map[string]struct{}, len(g.Entries))
	written := 0
	for _, e := range g.Entries {
		name := Slugify(e.ET) + ".md"
		wanted[name] = struct{}{}

		changed, err := writeIfChanged(filepath.Join(termsDir, name), termPage(e))
		if err != nil {
			return err
		}
		if changed {
			written++
		}
	}

	if err := removeOrphans(termsDir, wanted); err != nil {
		return err
	}

	if _, err := writeIfChanged(filepath.Join(dir, "index.md"), etIndex(g)); err != nil {
		return err
	}
	if _, err := writeIfChanged(filepath.Join(dir, "en-index.md"), enIndex(g)); err != nil {
		return err
	}

	slog.Info("generated glossary site", "dir", dir, "terms", len(g.Entries), "updated", written)
	return nil
}

func termPage(e Entry) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", e.ET)
	fmt.Fprintf(&b, "**English:** %s\n", e.EN)

	if e.Alt != nil {
		if len(e.Alt.ET) > 0 {
			fmt.Fprintf(&b, "\n**Muud kujud:** %s\n", strings.Join(e.Alt.ET, ", "))
		}
		if len(e.Alt.EN) > 0 {
			fmt.Fprintf(&b, "\n**Also known as:** %s\n", strings.Join(e.Alt.EN, ", "))
		}
	}
	if e.Definition != "" {
		fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(e.Definition))
	}
	if e.Example != "" {
		fmt.Fprintf(&b, "\n> %s\n", strings.TrimSpace(e.Example))
	}
	if len(e.References) > 0 {
		b.WriteString("\n## Allikad\n\n")
		for _, ref := range e.References {
			if ref.URL != "" {
				fmt.Fprintf(&b, "- [%s](%s)\n", ref.Title, ref.URL)
			} else {
				fmt.Fprintf(&b, "- %s\n", ref.Title)
			}
		}
	}
	return b.Bytes()
}

// indexLetter groups a term under its first letter, folding digits and
// punctuation into "#".
func indexLetter(term string) string {
	for _, r := range term {
		if unicode.IsLetter(r) {
			return strings.ToUpper(string(r))
		}
		break
	}
	return "#"
}

func etIndex(g *Glossary) []byte {
	entries := make([]Entry, len(g.Entries))
	copy(entries, g.Entries)
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].ET) < strings.ToLower(entries[j].ET)
	})

	return index("Sõnastik", "[English index](en-index.md)", entries,
		func(e Entry) string { return e.ET },
		func(e Entry) string {
			return fmt.Sprintf("- [%s](terms/%s.md) — %s", e.ET, Slugify(e.ET), e.EN)
		})
}

func enIndex(g *Glossary) []byte {
	entries := make([]Entry, len(g.Entries))
	copy(entries, g.Entries)
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].EN) < strings.ToLower(entries[j].EN)
	})

	return index("English index", "[Eestikeelne register](index.md)", entries,
		func(e Entry) string { return e.EN },
		func(e Entry) string {
			return fmt.Sprintf("- [%s](terms/%s.md) — %s", e.EN, Slugify(e.ET), e.ET)
		})
}

func index(title, crossLink string, entries []Entry, key, line func(Entry) string) []byte {
	var letters []string
	byLetter := map[string][]Entry{}
	for _, e := range entries {
		l := indexLetter(key(e))
		if _, ok := byLetter[l]; !ok {
			letters = append(letters, l)
		}
		byLetter[l] = append(byLetter[l], e)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", title, crossLink)

	links := make([]string, 0, len(letters))
	for _, l := range letters {
		links = append(links, fmt.Sprintf("[%s](#%s)", l, strings.ToLower(l)))
	}
	b.WriteString(strings.Join(links, " · "))
	b.WriteString("\n")

	for _, l := range letters {
		fmt.Fprintf(&b, "\n## %s\n\n", l)
		for _, e := range byLetter[l] {
			b.WriteString(line(e))
			b.WriteString("\n")
		}
	}
	return b.Bytes()
}

func writeIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

func removeOrphans(termsDir string, wanted map[string]struct{}) error {
	files, err := os.ReadDir(termsDir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", termsDir, err)
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		if _, ok := wanted[f.Name()]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(termsDir, f.Name())); err != nil {
			return fmt.Errorf("failed to remove orphan page %s: %w", f.Name(), err)
		}
		slog.Debug("removed orphan term page", "file", f.Name())
	}
	return nil
}
