package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KristoR/andmed-et-en/internal/glossary"
	"github.com/KristoR/andmed-et-en/internal/report"
)

func newSeedCmd() *cobra.Command {
	var (
		candidatesPath string
		glossaryPath   string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed glossary entries from reviewed candidate terms",
		Long: `Appends the missing curated terms from a candidate file to the
glossary as skeleton entries. Each entry gets its first Estonian hint as
the primary form and the rest as alternates; definitions stay empty so
they can be drafted later with the enrich command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := report.ReadCandidates(candidatesPath)
			if err != nil {
				return err
			}

			added, err := glossary.Seed(glossaryPath, c.Missing)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d terms to %s\n", added, glossaryPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&candidatesPath, "candidates", "c", "candidates.yaml", "Candidate terms file")
	cmd.Flags().StringVarP(&glossaryPath, "glossary", "g", "terms.yml", "Glossary file")

	return cmd
}
