package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sonastik",
		Short: "Bilingual data science terminology discovery from Estonian thesis repositories",
		Long: `Sonastik harvests thesis metadata from Estonian university repositories
over OAI-PMH, extracts data science terminology from bilingual abstracts,
and reconciles it against a curated Estonian-English glossary.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(newHarvestCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newGlossaryCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newEnrichCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
