package chunker

import (
	"strings"
	"testing"
)

func TestNounPhrases(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	phrases, err := c.NounPhrases("The neural network improves the prediction accuracy of the weather model.")
	if err != nil {
		t.Fatalf("NounPhrases failed: %v", err)
	}
	if len(phrases) == 0 {
		t.Fatal("Expected at least one noun phrase")
	}

	found := false
	for _, p := range phrases {
		if strings.Contains(strings.ToLower(p), "network") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a phrase containing 'network', got %v", phrases)
	}
}

func TestNounPhrasesEmptyText(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	phrases, err := c.NounPhrases("")
	if err != nil {
		t.Fatalf("NounPhrases failed on empty text: %v", err)
	}
	if len(phrases) != 0 {
		t.Errorf("Expected no phrases for empty text, got %v", phrases)
	}
}
