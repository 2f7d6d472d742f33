package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/KristoR/andmed-et-en/internal/terms"
	"github.com/KristoR/andmed-et-en/internal/thesis"
)

// Estonian hints shorter than this are excluded from pattern building:
// boundary matching on two-letter fragments is pure noise in an
// agglutinative language.
const minHintLen = 3

// compiledTerm pairs a reference term with its precompiled pattern.
type compiledTerm struct {
	ref     terms.ReferenceTerm
	pattern *regexp.Regexp
}

// CuratedMatcher scans thesis records for occurrences of catalog terms.
// Patterns are compiled once per run at construction.
type CuratedMatcher struct {
	enPatterns   []compiledTerm
	hintPatterns []compiledTerm
}

// NewCuratedMatcher precompiles one pattern per English term and one per
// usable Estonian hint.
func NewCuratedMatcher(catalog *terms.Catalog) *CuratedMatcher {
	m := &CuratedMatcher{}
	for _, ref := range catalog.Terms() {
		m.enPatterns = append(m.enPatterns, compiledTerm{ref: ref, pattern: termPattern(ref.EN)})
		for _, hint := range ref.ETHints {
			if len([]rune(hint)) < minHintLen {
				continue
			}
			m.hintPatterns = append(m.hintPatterns, compiledTerm{ref: ref, pattern: termPattern(hint)})
		}
	}
	return m
}

// Match searches every record against the catalog and returns a mapping
// from lowercased English term to its match. A term matches at most once
// per record no matter how many patterns or fields trigger it.
func (m *CuratedMatcher) Match(records []thesis.Record) map[string]*TermMatch {
	results := make(map[string]*TermMatch)

	for i := range records {
		record := &records[i]
		found := make(map[string]struct{})

		if record.AbstractEN != "" {
			for _, ct := range m.enPatterns {
				if ct.pattern.MatchString(record.AbstractEN) {
					found[strings.ToLower(ct.ref.EN)] = struct{}{}
				}
			}
		}

		// A hint hit attributes to its parent term, never the hint itself.
		if record.AbstractET != "" {
			for _, ct := range m.hintPatterns {
				if ct.pattern.MatchString(record.AbstractET) {
					found[strings.ToLower(ct.ref.EN)] = struct{}{}
				}
			}
		}

		for _, subject := range record.Subjects {
			for _, ct := range m.enPatterns {
				if ct.pattern.MatchString(subject) {
					found[strings.ToLower(ct.ref.EN)] = struct{}{}
				}
			}
		}

		for key := range found {
			match, ok := results[key]
			if !ok {
				ref := m.lookup(key)
				match = &TermMatch{
					EN:         ref.EN,
					ETHints:    ref.ETHints,
					Source:     SourceCurated,
					Confidence: ConfidenceHigh,
					Category:   ref.Category,
				}
				results[key] = match
			}
			match.Frequency++
			match.addRef(ThesisRef{
				Title:      record.Title(),
				URL:        record.URL,
				University: record.University,
			})
		}
	}

	slog.Info("Curated matching finished", "unique_terms", len(results), "records", len(records))
	return results
}

func (m *CuratedMatcher) lookup(key string) terms.ReferenceTerm {
	for _, ct := range m.enPatterns {
		if strings.ToLower(ct.ref.EN) == key {
			return ct.ref
		}
	}
	return terms.ReferenceTerm{EN: key}
}
