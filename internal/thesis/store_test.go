package thesis

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return []Record{
		{
			Identifier: "oai:dspace.ut.ee:10062/1",
			Titles:     []string{"Masinõppe meetodid", "Machine learning methods"},
			TitleET:    "Masinõppe meetodid",
			TitleEN:    "Machine learning methods",
			Authors:    []string{"Tamm, Mari"},
			AbstractEN: "This thesis applies machine learning to weather data.",
			AbstractET: "Käesolev töö rakendab masinõpet ilmaandmetele.",
			Subjects:   []string{"machine learning"},
			Date:       "2023-06-12",
			Year:       2023,
			ThesisType: "master thesis",
			URL:        "https://dspace.ut.ee/handle/10062/1",
			University: "ut",
		},
		{
			Identifier: "oai:digikogu.taltech.ee:2",
			Titles:     []string{"Andmetorustike jälgitavus"},
			TitleET:    "Andmetorustike jälgitavus",
			AbstractET: "Töös uuritakse andmetorustike jälgitavuse lahendusi.",
			Year:       2024,
			University: "taltech",
		},
	}
}

func TestStoreJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theses.jsonl")
	store := NewStore(path)

	records := sampleRecords()
	if err := store.Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(records, loaded) {
		t.Errorf("Round trip mismatch:\nsaved:  %+v\nloaded: %+v", records, loaded)
	}
}

func TestStoreParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theses.parquet")
	store := NewStore(path)

	records := sampleRecords()
	if err := store.Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}
	if loaded[0].Identifier != records[0].Identifier {
		t.Errorf("Expected identifier %s, got %s", records[0].Identifier, loaded[0].Identifier)
	}
	if loaded[1].AbstractET != records[1].AbstractET {
		t.Errorf("Expected abstract %q, got %q", records[1].AbstractET, loaded[1].AbstractET)
	}
}

func TestStoreSkipsMalformedJSONLLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theses.jsonl")

	content := `{"identifier":"oai:1","abstract_en":"Valid record one."}
this line is not JSON
{"identifier":"oai:2","abstract_en":"Valid record two."}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loaded, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected malformed line to be skipped, got %d records", len(loaded))
	}
	if loaded[1].Identifier != "oai:2" {
		t.Errorf("Expected identifier oai:2, got %s", loaded[1].Identifier)
	}
}

func TestStoreUnsupportedFormat(t *testing.T) {
	store := NewStore("theses.csv")

	if err := store.Save(nil); err == nil {
		t.Error("Expected error for unsupported format in Save, got nil")
	}
	if _, err := store.Load(); err == nil {
		t.Error("Expected error for unsupported format in Load, got nil")
	}
}
