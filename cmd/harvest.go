package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KristoR/andmed-et-en/internal/extract"
	"github.com/KristoR/andmed-et-en/internal/oai"
	"github.com/KristoR/andmed-et-en/internal/report"
	"github.com/KristoR/andmed-et-en/internal/state"
	"github.com/KristoR/andmed-et-en/internal/thesis"
)

func newHarvestCmd() *cobra.Command {
	var (
		universities []string
		fromDate     string
		untilDate    string
		full         bool
		recordsOut   string
		statePath    string
		glossaryPath string
		output       string
		minFrequency int
	)

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Harvest thesis metadata and extract terminology in one run",
		Long: `Harvests Dublin Core thesis records over OAI-PMH from the configured
Estonian university repositories, keeping only computer science and data
science collections, then runs term extraction over the record store and
writes the candidate file. Harvests are incremental: each run picks up
from the date stored in the state file unless --full or --from-date is
given.`,
		Example: `  # Incremental harvest from all universities
  sonastik harvest

  # Full re-harvest of University of Tartu theses since 2020
  sonastik harvest --universities ut --from-date 2020-01-01 --full`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			for _, key := range universities {
				if _, ok := oai.Universities[key]; !ok {
					return fmt.Errorf("unknown university %q (supported: %v)", key, oai.UniversityKeys())
				}
			}

			st, err := state.Load(statePath)
			if err != nil {
				return err
			}

			store := thesis.NewStore(recordsOut)
			existing, err := store.Load()
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			byIdentifier := make(map[string]thesis.Record, len(existing))
			order := make([]string, 0, len(existing))
			for _, rec := range existing {
				if _, ok := byIdentifier[rec.Identifier]; !ok {
					order = append(order, rec.Identifier)
				}
				byIdentifier[rec.Identifier] = rec
			}

			until := untilDate
			if until == "" {
				until = time.Now().UTC().Format("2006-01-02")
			}

			for _, key := range universities {
				uni := oai.Universities[key]
				client := oai.NewClient(uni.BaseURL)

				sets, err := client.ListSets(ctx)
				if err != nil {
					return fmt.Errorf("set discovery failed for %s: %w", uni.Name, err)
				}
				matched := oai.FilterDataScienceSets(sets)
				slog.Info("Selected sets", "university", uni.Name,
					"matched", len(matched), "available", len(sets))

				specs := make([]string, 0, len(matched))
				for _, set := range matched {
					specs = append(specs, set.Spec)
				}

				from := fromDate
				if from == "" && !full {
					from = st.LastHarvestDate(key)
				}

				raw, err := client.ListRecords(ctx, oai.HarvestOptions{
					Sets:      specs,
					FromDate:  from,
					UntilDate: until,
				})
				if err != nil {
					return fmt.Errorf("harvest failed for %s: %w", uni.Name, err)
				}

				parsed := thesis.ParseRecords(raw, key)
				for _, rec := range parsed {
					if _, ok := byIdentifier[rec.Identifier]; !ok {
						order = append(order, rec.Identifier)
					}
					byIdentifier[rec.Identifier] = rec
				}

				st.Update(key, until, specs, len(parsed))
			}

			merged := make([]thesis.Record, 0, len(order))
			for _, id := range order {
				merged = append(merged, byIdentifier[id])
			}

			if err := store.Save(merged); err != nil {
				return err
			}
			if err := st.Save(statePath); err != nil {
				return err
			}
			slog.Info("Harvest complete", "records", len(merged), "output", recordsOut)

			window := &report.HarvestWindow{From: fromDate, Until: until}
			return runExtraction(cmd.OutOrStdout(), merged, glossaryPath, output, minFrequency, window)
		},
	}

	cmd.Flags().StringSliceVarP(&universities, "universities", "u", oai.UniversityKeys(),
		"University codes to harvest")
	cmd.Flags().StringVar(&fromDate, "from-date", "", "Harvest records from this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&untilDate, "until-date", "", "Harvest records until this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&full, "full", false, "Ignore stored harvest state and re-harvest everything")
	cmd.Flags().StringVarP(&recordsOut, "records-out", "o", "theses.parquet",
		"Record store file (.parquet, .jsonl or .json)")
	cmd.Flags().StringVar(&statePath, "state", ".harvest-state.json", "Harvest state file")
	cmd.Flags().StringVarP(&glossaryPath, "glossary", "g", "terms.yml", "Glossary file")
	cmd.Flags().StringVar(&output, "output", "candidates.yaml", "Candidate terms output file")
	cmd.Flags().IntVar(&minFrequency, "min-frequency", extract.DefaultMinFrequency,
		"Minimum number of theses a novel phrase must appear in")

	return cmd
}
