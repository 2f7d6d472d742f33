package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KristoR/andmed-et-en/internal/enrich"
	"github.com/KristoR/andmed-et-en/internal/glossary"
)

func newEnrichCmd() *cobra.Command {
	var (
		glossaryPath string
		model        string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Draft Estonian definitions for glossary entries with Gemini",
		Long: `Drafts an Estonian definition for every glossary entry that lacks one,
using Google Gemini, and writes the drafts back to the glossary file.
Drafts are starting points for editors, not final text.

Requires the GEMINI_API_KEY environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := glossary.Load(glossaryPath)
			if err != nil {
				return err
			}

			enricher := enrich.New()
			if model != "" {
				enricher.Model = model
			}

			drafted, err := enricher.Run(cmd.Context(), g, limit)
			if err != nil {
				return err
			}
			if drafted == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All entries already have definitions")
				return nil
			}

			if err := g.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Drafted %d definitions in %s\n", drafted, glossaryPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&glossaryPath, "glossary", "g", "terms.yml", "Glossary file")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Gemini model to use")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of definitions to draft (0 = no limit)")

	return cmd
}
