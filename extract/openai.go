package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"paper2audio/models"
)

// OpenAIModel is the default model for text extraction.
const OpenAIModel = "gpt-4.1-mini-2025-04-14"

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

// OpenAIExtractor attaches the PDF as a base64 file part on a chat
// completions request. The endpoint is called directly because file parts
// are not covered by the SDK's typed message content.
type OpenAIExtractor struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

// OpenAIOptions overrides the extractor defaults. URL is mainly useful for
// pointing tests at a local server.
type OpenAIOptions struct {
	Model string
	URL   string
}

func NewOpenAIExtractor(apiKey string, opts OpenAIOptions, log zerolog.Logger) (*OpenAIExtractor, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required, set OPENAI_API_KEY")
	}
	model := opts.Model
	if model == "" {
		model = OpenAIModel
	}
	url := opts.URL
	if url == "" {
		url = openAIChatURL
	}
	return &OpenAIExtractor{
		apiKey:     apiKey,
		model:      model,
		url:        url,
		httpClient: http.DefaultClient,
		log:        log,
	}, nil
}

func (o *OpenAIExtractor) Extract(ctx context.Context, doc *models.Document, prompt string) (*models.Narration, error) {
	if prompt == "" {
		prompt = DefaultPrompt
	}

	o.log.Info().
		Str("model", o.model).
		Str("file", doc.FileName).
		Int64("bytes", doc.SizeBytes).
		Msg("extracting narratable text")

	b64 := base64.StdEncoding.EncodeToString(doc.Data)
	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "file",
						"file": map[string]string{
							"filename":  doc.FileName,
							"file_data": "data:" + pdfMIMEType + ";base64," + b64,
						},
					},
					{"type": "text", "text": prompt},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai api error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, errors.New("response has no choices")
	}
	o.log.Debug().Int("chars", len(result.Choices[0].Message.Content)).Msg("extraction response")

	return &models.Narration{
		Text:     result.Choices[0].Message.Content,
		Provider: "openai",
		Model:    o.model,
	}, nil
}
