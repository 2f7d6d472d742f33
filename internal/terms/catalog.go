package terms

import (
	"fmt"
	"strings"
)

// ReferenceTerm is a curated bilingual seed term. EN is the canonical
// English form; ETHints are candidate Estonian translations ordered by
// preference (first = primary).
type ReferenceTerm struct {
	EN       string
	ETHints  []string
	Category string
}

// Catalog is an ordered, validated collection of reference terms.
// No two entries share the same lowercased English form.
type Catalog struct {
	terms []ReferenceTerm
}

// NewCatalog validates and wraps a list of reference terms. Duplicate
// lowercased EN forms are a configuration error and fail fast.
func NewCatalog(refs []ReferenceTerm) (*Catalog, error) {
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		key := strings.ToLower(strings.TrimSpace(ref.EN))
		if key == "" {
			return nil, fmt.Errorf("reference term with empty EN form")
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate reference term: %s", ref.EN)
		}
		seen[key] = struct{}{}
	}
	return &Catalog{terms: refs}, nil
}

// Default returns the built-in seed catalog.
func Default() *Catalog {
	c, err := NewCatalog(seedTerms)
	if err != nil {
		// The seed list is compile-time data; a duplicate there is a bug.
		panic(err)
	}
	return c
}

// Terms returns the catalog entries in their original order.
func (c *Catalog) Terms() []ReferenceTerm {
	return c.terms
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.terms)
}

// Lookup returns the entry whose lowercased EN form equals key.
func (c *Catalog) Lookup(key string) (ReferenceTerm, bool) {
	for _, ref := range c.terms {
		if strings.ToLower(ref.EN) == key {
			return ref, true
		}
	}
	return ReferenceTerm{}, false
}

// HintVocabulary maps every Estonian hint (lowercased) to the lowercased
// EN form of its owning term. Used to keep hint strings from resurfacing
// as novel English candidates.
func (c *Catalog) HintVocabulary() map[string]string {
	vocab := make(map[string]string)
	for _, ref := range c.terms {
		for _, hint := range ref.ETHints {
			vocab[strings.ToLower(hint)] = strings.ToLower(ref.EN)
		}
	}
	return vocab
}
