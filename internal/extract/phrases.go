package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/KristoR/andmed-et-en/internal/thesis"
)

// DefaultMinFrequency is the default number of distinct theses a novel
// phrase must appear in to be retained.
const DefaultMinFrequency = 3

// Chunker extracts noun-phrase chunks from English text. It is an
// optional capability: when no chunker is available the English path of
// phrase extraction degrades to empty output and only the Estonian
// n-gram path runs.
type Chunker interface {
	NounPhrases(text string) ([]string, error)
}

// estonianWordPattern tokenizes Estonian text into lowercase word runs,
// diacritics included.
var estonianWordPattern = regexp.MustCompile(`[a-zõäöüšž]+`)

// minEstonianWordLen drops short function words from n-gram candidates.
const minEstonianWordLen = 3

// PhraseExtractor discovers candidate phrases by frequency: English
// noun-phrase chunks (when a Chunker is available) and Estonian sliding
// n-grams of size 2 and 3.
type PhraseExtractor struct {
	chunker      Chunker
	minFrequency int
}

// NewPhraseExtractor builds an extractor. A nil chunker puts the English
// path into degraded mode; this is decided here, once, not per record.
func NewPhraseExtractor(chunker Chunker, minFrequency int) *PhraseExtractor {
	if minFrequency <= 0 {
		minFrequency = DefaultMinFrequency
	}
	if chunker == nil {
		slog.Warn("No noun-phrase chunker available, English phrase extraction disabled")
	}
	return &PhraseExtractor{chunker: chunker, minFrequency: minFrequency}
}

// Extract returns a mapping from lowercased phrase to its match, keeping
// only phrases found in at least minFrequency distinct records. The
// threshold is inclusive.
func (e *PhraseExtractor) Extract(records []thesis.Record) map[string]*TermMatch {
	counts := make(map[string]int)
	refs := make(map[string][]ThesisRef)

	for i := range records {
		record := &records[i]
		found := make(map[string]struct{})

		if e.chunker != nil && record.AbstractEN != "" {
			chunks, err := e.chunker.NounPhrases(record.AbstractEN)
			if err != nil {
				// One unparseable abstract must not halt the batch.
				slog.Warn("Noun-phrase chunking failed for record, skipping field",
					"identifier", record.Identifier, "error", err)
			}
			for _, chunk := range chunks {
				if phrase, ok := normalizeEnglishPhrase(chunk); ok {
					found[phrase] = struct{}{}
				}
			}
		}

		if record.AbstractET != "" {
			for _, ngram := range estonianNGrams(record.AbstractET) {
				found[ngram] = struct{}{}
			}
		}

		// One contribution per phrase per record, across both paths.
		for phrase := range found {
			counts[phrase]++
			if len(refs[phrase]) < maxThesisRefs {
				refs[phrase] = append(refs[phrase], ThesisRef{
					Title:      record.Title(),
					URL:        record.URL,
					University: record.University,
				})
			}
		}
	}

	results := make(map[string]*TermMatch)
	for phrase, count := range counts {
		if count < e.minFrequency {
			continue
		}
		results[phrase] = &TermMatch{
			EN:         phrase,
			Source:     SourceNLP,
			Confidence: ConfidenceMedium,
			Frequency:  count,
			ThesisRefs: refs[phrase],
		}
	}

	slog.Info("Phrase extraction finished",
		"phrases", len(results), "min_frequency", e.minFrequency, "records", len(records))
	return results
}

// normalizeEnglishPhrase filters and cleans one noun-phrase chunk:
// 2-4 words, not a generic phrase, at least one content word, leading
// article stripped. Returns false when the chunk is rejected.
func normalizeEnglishPhrase(chunk string) (string, bool) {
	phrase := strings.ToLower(strings.TrimSpace(chunk))
	words := strings.Fields(phrase)
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}
	if _, generic := genericPhrases[phrase]; generic {
		return "", false
	}

	hasContent := false
	for _, w := range words {
		if !isStopword(w) {
			hasContent = true
			break
		}
	}
	if !hasContent {
		return "", false
	}

	if _, article := leadingArticles[words[0]]; article {
		words = words[1:]
		if len(words) < 2 {
			return "", false
		}
		phrase = strings.Join(words, " ")
	}
	return phrase, true
}

// estonianNGrams generates sliding-window n-grams of size 2 and 3 over
// the lowercased word runs of Estonian text, keeping only n-grams where
// every word has at least three characters.
func estonianNGrams(text string) []string {
	words := estonianWordPattern.FindAllString(strings.ToLower(text), -1)

	var ngrams []string
	for _, n := range []int{2, 3} {
		for i := 0; i+n <= len(words); i++ {
			window := words[i : i+n]
			ok := true
			for _, w := range window {
				if len([]rune(w)) < minEstonianWordLen {
					ok = false
					break
				}
			}
			if ok {
				ngrams = append(ngrams, strings.Join(window, " "))
			}
		}
	}
	return ngrams
}
