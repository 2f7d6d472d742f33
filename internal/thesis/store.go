package thesis

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Store reads and writes harvested thesis records so extraction can be
// re-run offline without touching the repositories again. The file format
// is chosen by extension: .jsonl/.json or .parquet.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes records to the store file, replacing any previous content.
func (s *Store) Save(records []Record) error {
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".parquet":
		return s.saveParquet(records)
	case ".jsonl", ".json":
		return s.saveJSONL(records)
	default:
		return fmt.Errorf("unsupported record file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

// Load reads every record from the store file.
func (s *Store) Load() ([]Record, error) {
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".parquet":
		return s.loadParquet()
	case ".jsonl", ".json":
		return s.loadJSONL()
	default:
		return nil, fmt.Errorf("unsupported record file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func (s *Store) saveJSONL(records []Record) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create record file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	for i, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush record file: %w", err)
	}

	slog.Debug("Saved records as JSONL", "path", s.path, "records", len(records))
	return nil
}

func (s *Store) loadJSONL() ([]Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)

	// Abstracts can make individual lines large.
	const maxCapacity = 4 * 1024 * 1024
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			// One malformed line must not halt loading the whole corpus.
			slog.Warn("Skipping malformed record line", "path", s.path, "line", lineNum, "error", err)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading record file: %w", err)
	}

	slog.Debug("Loaded records from JSONL", "path", s.path, "records", len(records))
	return records, nil
}

func (s *Store) saveParquet(records []Record) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Record](file)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	slog.Debug("Saved records as Parquet", "path", s.path, "records", len(records))
	return nil
}

func (s *Store) loadParquet() ([]Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[Record](pf)
	defer reader.Close()

	var records []Record
	rows := make([]Record, 128)
	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Loaded records from Parquet", "path", s.path, "records", len(records))
	return records, nil
}
