package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KristoR/andmed-et-en/internal/glossary"
)

func newGlossaryCmd() *cobra.Command {
	var (
		glossaryPath string
		siteDir      string
		check        bool
	)

	cmd := &cobra.Command{
		Use:   "glossary",
		Short: "Validate the glossary and generate its markdown site",
		Example: `  # Regenerate the site under docs/
  sonastik glossary

  # Validate terms.yml without writing anything
  sonastik glossary --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := glossary.Load(glossaryPath)
			if err != nil {
				return err
			}

			if check {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, no problems found\n",
					glossaryPath, len(g.Entries))
				return nil
			}

			return glossary.Generate(g, siteDir)
		},
	}

	cmd.Flags().StringVarP(&glossaryPath, "glossary", "g", "terms.yml", "Glossary file")
	cmd.Flags().StringVar(&siteDir, "site", "docs", "Output directory for the markdown site")
	cmd.Flags().BoolVar(&check, "check", false, "Validate the glossary without generating the site")

	return cmd
}
