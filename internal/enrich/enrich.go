// Package enrich drafts Estonian definitions for glossary entries that
// have none, using Google Gemini. Drafts are written back to the
// glossary for human review, never published as-is.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/KristoR/andmed-et-en/internal/glossary"
)

const defaultModel = "gemini-2.0-flash"

// Enricher drafts definitions for glossary entries.
type Enricher struct {
	Model       string
	Temperature float32
}

// New returns an Enricher with default model settings.
func New() *Enricher {
	return &Enricher{Model: defaultModel, Temperature: 0.2}
}

const definitionPrompt = `Kirjuta lühike eestikeelne definitsioon andmeteaduse terminile "%s" (inglise keeles "%s"). Vasta ainult definitsiooniga, ilma sissejuhatuseta, maksimaalselt kaks lauset.`

// Run drafts a definition for every entry in g that lacks one, up to
// limit entries (0 means no limit). It returns the number of drafted
// definitions; the caller saves the glossary.
func (e *Enricher) Run(ctx context.Context, g *glossary.Glossary, limit int) (int, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return 0, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return 0, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(e.Model)
	model.SetTemperature(e.Temperature)

	drafted := 0
	for i := range g.Entries {
		entry := &g.Entries[i]
		if entry.Definition != "" {
			continue
		}
		if limit > 0 && drafted >= limit {
			break
		}

		definition, err := e.draft(ctx, model, entry.ET, entry.EN)
		if err != nil {
			slog.Warn("failed to draft definition", "term", entry.ET, "err", err)
			continue
		}

		entry.Definition = definition
		drafted++
		slog.Info("drafted definition", "term", entry.ET)
	}

	return drafted, nil
}

func (e *Enricher) draft(ctx context.Context, model *genai.GenerativeModel, et, en string) (string, error) {
	prompt := fmt.Sprintf(definitionPrompt, et, en)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}
	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
