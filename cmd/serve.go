package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/KristoR/andmed-et-en/internal/glossary"
)

func newServeCmd() *cobra.Command {
	var (
		port         string
		glossaryPath string
		siteDir      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the glossary site and term API",
		Long: `Serves the generated markdown site and a small JSON API over the
glossary. The glossary is reloaded on every API request, so edits to the
terms file show up without a restart.`,
		Example: `  # Serve on default port 8888
  sonastik serve

  # Serve on custom port
  sonastik serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mux := http.NewServeMux()
			mux.Handle("/", http.FileServer(http.Dir(siteDir)))
			mux.HandleFunc("/api/terms", func(w http.ResponseWriter, r *http.Request) {
				g, err := glossary.Load(glossaryPath)
				if err != nil {
					slog.Error("Unable to load glossary", "err", err)
					http.Error(w, "glossary unavailable", http.StatusInternalServerError)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				if err := json.NewEncoder(w).Encode(g.Entries); err != nil {
					slog.Error("Unable to write terms response", "err", err)
				}
			})
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Glossary available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVarP(&glossaryPath, "glossary", "g", "terms.yml", "Glossary file")
	cmd.Flags().StringVar(&siteDir, "site", "docs", "Directory of the generated site")

	return cmd
}
