package extract

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/KristoR/andmed-et-en/internal/terms"
	"github.com/KristoR/andmed-et-en/internal/thesis"
)

// Options configures one extraction run.
type Options struct {
	// Catalog of curated reference terms. Defaults to the built-in seed
	// catalog when nil.
	Catalog *terms.Catalog

	// ExistingTerms is the lowercased set of every canonical EN term and
	// registered alternative spelling already in the glossary. Membership
	// tests only; never mutated.
	ExistingTerms map[string]struct{}

	// Chunker for the English noun-phrase path; nil means degraded mode.
	Chunker Chunker

	// MinFrequency is the inclusive record-count threshold for novel
	// phrases. Zero means DefaultMinFrequency.
	MinFrequency int
}

// Result holds the three classified term lists, each sorted by frequency
// descending with alphabetical tie-break.
type Result struct {
	// Missing: curated terms found in theses but absent from the glossary.
	Missing []TermMatch
	// Confirmed: curated terms found in theses that are already in the
	// glossary.
	Confirmed []TermMatch
	// Novel: frequency-discovered phrases not explainable by the catalog,
	// its hint vocabulary, or the glossary.
	Novel []TermMatch
}

// Run executes both extraction strategies over the records and
// reconciles the output against the existing glossary. It is a pure
// function of its inputs: the same records, catalog, existing-terms set
// and threshold always produce the same three lists in the same order.
func Run(records []thesis.Record, opts Options) Result {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = terms.Default()
	}

	curated := NewCuratedMatcher(catalog).Match(records)
	novel := NewPhraseExtractor(opts.Chunker, opts.MinFrequency).Extract(records)

	var result Result

	// Every curated key lands in exactly one of the two lists.
	for key, match := range curated {
		if _, known := opts.ExistingTerms[key]; known {
			result.Confirmed = append(result.Confirmed, *match)
		} else {
			result.Missing = append(result.Missing, *match)
		}
	}

	// A novel phrase is dropped when curated matching already found it, when
	// it is a known Estonian hint (a translation candidate is not a new
	// English term), or when the glossary already has it.
	hints := catalog.HintVocabulary()
	for key, match := range novel {
		if _, found := curated[key]; found {
			continue
		}
		if _, isHint := hints[key]; isHint {
			continue
		}
		if _, known := opts.ExistingTerms[key]; known {
			continue
		}
		result.Novel = append(result.Novel, *match)
	}

	// Frequency descending; equal frequencies break alphabetically so the
	// ordering does not depend on map iteration order.
	sortMatches(result.Missing)
	sortMatches(result.Confirmed)
	sortMatches(result.Novel)

	slog.Info("Term extraction summary",
		"missing", len(result.Missing),
		"confirmed", len(result.Confirmed),
		"novel", len(result.Novel))

	return result
}

func sortMatches(matches []TermMatch) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Frequency != matches[j].Frequency {
			return matches[i].Frequency > matches[j].Frequency
		}
		return strings.ToLower(matches[i].EN) < strings.ToLower(matches[j].EN)
	})
}
