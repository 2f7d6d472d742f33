// Package chunker provides English noun-phrase extraction on top of the
// prose POS tagger. It backs the optional English path of phrase
// discovery; when construction fails the pipeline runs without it.
package chunker

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// NounPhraseChunker extracts noun-phrase chunks from English text by
// scanning part-of-speech tag runs.
type NounPhraseChunker struct{}

// New probes the tagger once and returns a ready chunker. The probe is
// the availability check: callers that get an error run in degraded mode
// and never retry per record.
func New() (*NounPhraseChunker, error) {
	if _, err := prose.NewDocument("The model works.", prose.WithExtraction(false)); err != nil {
		return nil, fmt.Errorf("noun-phrase tagger unavailable: %w", err)
	}
	return &NounPhraseChunker{}, nil
}

// Penn Treebank tags allowed inside a noun-phrase run. A run must end
// with a noun tag to be emitted.
func inNounPhrase(tag string) bool {
	switch tag {
	case "DT", "PDT", "JJ", "JJR", "JJS", "NN", "NNS", "NNP", "NNPS", "VBG":
		return true
	}
	return false
}

func isNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

// NounPhrases returns the noun-phrase chunks of text, in document order.
// Chunks keep their leading determiners; downstream filtering strips
// them.
func (c *NounPhraseChunker) NounPhrases(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	var (
		phrases []string
		run     []prose.Token
	)
	flush := func() {
		// Trim adjectives/determiners hanging off the end so the chunk
		// ends on its head noun.
		end := len(run)
		for end > 0 && !isNoun(run[end-1].Tag) {
			end--
		}
		if end > 0 {
			words := make([]string, 0, end)
			for _, tok := range run[:end] {
				words = append(words, tok.Text)
			}
			phrases = append(phrases, strings.Join(words, " "))
		}
		run = run[:0]
	}

	for _, tok := range doc.Tokens() {
		if inNounPhrase(tok.Tag) {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases, nil
}
