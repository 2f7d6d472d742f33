package extract

import (
	"reflect"
	"testing"

	"github.com/KristoR/andmed-et-en/internal/terms"
	"github.com/KristoR/andmed-et-en/internal/thesis"
)

func reconcileFixture() ([]thesis.Record, Options) {
	catalog, _ := terms.NewCatalog([]terms.ReferenceTerm{
		{EN: "machine learning", ETHints: []string{"masinõpe"}, Category: "machine-learning"},
		{EN: "neural network", ETHints: []string{"närvivõrk"}, Category: "machine-learning"},
	})

	abstract := "This thesis applies machine learning and a neural network to weather data."
	records := []thesis.Record{
		{Titles: []string{"A"}, AbstractEN: abstract, AbstractET: "andmekvaliteedi hindamine"},
		{Titles: []string{"B"}, AbstractEN: abstract, AbstractET: "andmekvaliteedi hindamine"},
		{Titles: []string{"C"}, AbstractEN: abstract, AbstractET: "andmekvaliteedi hindamine"},
	}

	opts := Options{
		Catalog:       catalog,
		ExistingTerms: map[string]struct{}{"machine learning": {}},
		MinFrequency:  3,
	}
	return records, opts
}

func termNames(matches []TermMatch) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.EN)
	}
	return names
}

func TestRunClassification(t *testing.T) {
	records, opts := reconcileFixture()

	result := Run(records, opts)

	if got := termNames(result.Confirmed); !reflect.DeepEqual(got, []string{"machine learning"}) {
		t.Errorf("Expected confirmed [machine learning], got %v", got)
	}
	if got := termNames(result.Missing); !reflect.DeepEqual(got, []string{"neural network"}) {
		t.Errorf("Expected missing [neural network], got %v", got)
	}

	novel := termNames(result.Novel)
	foundNovel := false
	for _, name := range novel {
		if name == "andmekvaliteedi hindamine" {
			foundNovel = true
		}
	}
	if !foundNovel {
		t.Errorf("Expected novel list to contain 'andmekvaliteedi hindamine', got %v", novel)
	}
}

func TestRunListsAreDisjoint(t *testing.T) {
	records, opts := reconcileFixture()

	result := Run(records, opts)

	seen := map[string]string{}
	for listName, list := range map[string][]TermMatch{
		"missing":   result.Missing,
		"confirmed": result.Confirmed,
		"novel":     result.Novel,
	} {
		for _, m := range list {
			if prev, dup := seen[m.EN]; dup {
				t.Errorf("Term %q appears in both %s and %s", m.EN, prev, listName)
			}
			seen[m.EN] = listName
		}
	}
}

func TestRunNovelExcludesKnownForms(t *testing.T) {
	catalog, _ := terms.NewCatalog([]terms.ReferenceTerm{
		{EN: "machine learning", ETHints: []string{"masinõppe mudel"}},
	})

	records := []thesis.Record{
		{AbstractET: "masinõppe mudel"},
		{AbstractET: "masinõppe mudel"},
		{AbstractET: "masinõppe mudel"},
	}

	result := Run(records, Options{Catalog: catalog, MinFrequency: 3})

	// The frequent Estonian bigram is a registered hint, so it must not
	// resurface as a novel candidate.
	for _, m := range result.Novel {
		if m.EN == "masinõppe mudel" {
			t.Error("Known hint string leaked into the novel list")
		}
	}
}

func TestRunDeterministicOrdering(t *testing.T) {
	records, opts := reconcileFixture()

	first := Run(records, opts)
	second := Run(records, opts)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results for identical inputs")
	}
}

func TestSortMatches(t *testing.T) {
	matches := []TermMatch{
		{EN: "regression", Frequency: 2},
		{EN: "Clustering", Frequency: 5},
		{EN: "boosting", Frequency: 5},
		{EN: "anomaly detection", Frequency: 2},
	}

	sortMatches(matches)

	expected := []string{"boosting", "Clustering", "anomaly detection", "regression"}
	for i, want := range expected {
		if matches[i].EN != want {
			t.Errorf("Expected position %d to be %q, got %q", i, want, matches[i].EN)
		}
	}
}
