package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KristoR/andmed-et-en/internal/chunker"
	"github.com/KristoR/andmed-et-en/internal/extract"
	"github.com/KristoR/andmed-et-en/internal/glossary"
	"github.com/KristoR/andmed-et-en/internal/report"
	"github.com/KristoR/andmed-et-en/internal/thesis"
)

// runExtraction runs term extraction over records, writes the candidate
// file and prints a console summary. A missing glossary is not an error:
// every curated term is then reported as missing.
func runExtraction(out io.Writer, records []thesis.Record, glossaryPath, output string, minFrequency int, window *report.HarvestWindow) error {
	opts := extract.Options{MinFrequency: minFrequency}

	g, err := glossary.Load(glossaryPath)
	switch {
	case err == nil:
		opts.ExistingTerms = g.ExistingTerms()
	case errors.Is(err, os.ErrNotExist):
		slog.Info("No glossary found, treating every term as new", "path", glossaryPath)
	default:
		return err
	}

	if np, err := chunker.New(); err != nil {
		slog.Warn("English noun-phrase chunking unavailable", "err", err)
	} else {
		opts.Chunker = np
	}

	result := extract.Run(records, opts)

	if err := report.WriteCandidates(output, report.Candidates{
		HarvestWindow: window,
		RecordCount:   len(records),
		Missing:       result.Missing,
		Novel:         result.Novel,
	}); err != nil {
		return err
	}

	report.PrintSummary(out, len(records), result)
	return nil
}

func newExtractCmd() *cobra.Command {
	var (
		recordsPath  string
		glossaryPath string
		output       string
		minFrequency int
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract terminology from harvested thesis records",
		Long: `Runs term extraction over a harvested record store: curated term
matching against abstracts and subjects, noun-phrase and n-gram discovery
for novel candidates, and reconciliation against the glossary. Results
are split into missing, confirmed and novel terms and written to a
candidate file for review.`,
		Example: `  # Extract terms and write candidates for review
  sonastik extract --records theses.parquet --output candidates.yaml

  # Require a phrase to appear in at least five theses
  sonastik extract --min-frequency 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := thesis.NewStore(recordsPath)
			records, err := store.Load()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("record store %s is empty; run harvest first", recordsPath)
			}

			return runExtraction(cmd.OutOrStdout(), records, glossaryPath, output, minFrequency, nil)
		},
	}

	cmd.Flags().StringVarP(&recordsPath, "records", "r", "theses.parquet",
		"Record store file (.parquet, .jsonl or .json)")
	cmd.Flags().StringVarP(&glossaryPath, "glossary", "g", "terms.yml", "Glossary file")
	cmd.Flags().StringVarP(&output, "output", "o", "candidates.yaml", "Candidate terms output file")
	cmd.Flags().IntVar(&minFrequency, "min-frequency", extract.DefaultMinFrequency,
		"Minimum number of theses a novel phrase must appear in")

	return cmd
}
