package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KristoR/andmed-et-en/internal/oai"
)

const harvestTestResponse = `<?xml version="1.0"?><OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/"><ListRecords>
<record><header><identifier>oai:test:1</identifier></header>
<metadata><oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title>Machine learning for weather prediction</dc:title>
<dc:description>This thesis applies machine learning methods to weather station data collected in Estonia.</dc:description>
<dc:identifier>https://dspace.test.ee/handle/1</dc:identifier>
</oai_dc:dc></metadata></record>
</ListRecords></OAI-PMH>`

func TestHarvestRunsFullPipeline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("verb") {
		case "ListSets":
			fmt.Fprint(w, `<?xml version="1.0"?><OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/"><ListSets>
<set><setSpec>col_1</setSpec><setName>Informaatika instituudi lõputööd</setName></set>
</ListSets></OAI-PMH>`)
		case "ListRecords":
			fmt.Fprint(w, harvestTestResponse)
		default:
			t.Errorf("Unexpected verb %q", r.URL.Query().Get("verb"))
		}
	}))
	defer server.Close()

	original := oai.Universities["ut"]
	oai.Universities["ut"] = oai.University{Key: "ut", Name: "Test repository", BaseURL: server.URL}
	defer func() { oai.Universities["ut"] = original }()

	dir := t.TempDir()
	recordsPath := filepath.Join(dir, "theses.jsonl")
	candidatesPath := filepath.Join(dir, "candidates.yaml")
	statePath := filepath.Join(dir, "state.json")

	cmd := newHarvestCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--universities", "ut",
		"--records-out", recordsPath,
		"--state", statePath,
		"--glossary", filepath.Join(dir, "terms.yml"),
		"--output", candidatesPath,
		"--until-date", "2024-06-30",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("harvest failed: %v", err)
	}

	if _, err := os.Stat(recordsPath); err != nil {
		t.Errorf("Expected record store to be written: %v", err)
	}
	if _, err := os.Stat(statePath); err != nil {
		t.Errorf("Expected state file to be written: %v", err)
	}

	// One run must also produce the candidate file and the summary, not
	// just the record store.
	candidates, err := os.ReadFile(candidatesPath)
	if err != nil {
		t.Fatalf("Expected candidate file to be written: %v", err)
	}
	if !strings.Contains(string(candidates), "machine learning") {
		t.Errorf("Expected candidates to list the matched term, got:\n%s", candidates)
	}
	if !strings.Contains(string(candidates), "until: \"2024-06-30\"") &&
		!strings.Contains(string(candidates), "until: 2024-06-30") {
		t.Errorf("Expected candidates to carry the harvest window, got:\n%s", candidates)
	}

	summary := out.String()
	if !strings.Contains(summary, "Processed 1 thesis records") {
		t.Errorf("Expected summary output, got:\n%s", summary)
	}
	if !strings.Contains(summary, "missing from glossary: 1") {
		t.Errorf("Expected one missing term in summary, got:\n%s", summary)
	}
}
