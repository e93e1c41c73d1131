package extract

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"paper2audio/gemini"
	"paper2audio/models"
)

// GeminiModel is the default model for text extraction.
const GeminiModel = "gemini-2.5-flash"

// GeminiExtractor sends the whole PDF inline next to the prompt in a single
// multimodal generateContent call.
type GeminiExtractor struct {
	client *gemini.Client
	model  string
	log    zerolog.Logger
}

func NewGeminiExtractor(client *gemini.Client, model string, log zerolog.Logger) *GeminiExtractor {
	if model == "" {
		model = GeminiModel
	}
	return &GeminiExtractor{client: client, model: model, log: log}
}

func (g *GeminiExtractor) Extract(ctx context.Context, doc *models.Document, prompt string) (*models.Narration, error) {
	if prompt == "" {
		prompt = DefaultPrompt
	}

	g.log.Info().
		Str("model", g.model).
		Str("file", doc.FileName).
		Int64("bytes", doc.SizeBytes).
		Msg("extracting narratable text")

	req := &gemini.GenerateContentRequest{
		Contents: []gemini.Content{gemini.UserContent(
			gemini.BlobPart(pdfMIMEType, doc.Data),
			gemini.TextPart(prompt),
		)},
	}

	resp, err := g.client.GenerateContent(ctx, g.model, req)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}
	text, err := resp.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}
	g.log.Debug().Int("chars", len(text)).Msg("extraction response")

	return &models.Narration{
		Text:     text,
		Provider: "gemini",
		Model:    g.model,
	}, nil
}
