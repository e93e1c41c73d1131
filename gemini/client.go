package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultEndpoint is the Gemini Developer API base. Credentials ride on the
// HTTP client, not on the URL.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// VertexEndpoint returns the endpoint for the same models served through a
// Vertex AI project instead of the Developer API.
func VertexEndpoint(projectID, location string) string {
	return fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google",
		location, projectID, location,
	)
}

// Client is a minimal generateContent client. The supplied HTTP client is
// expected to attach credentials (API key or OAuth token) to every request.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimSuffix(endpoint, "/"),
	}
}

// GenerateContent performs a single blocking generateContent call against
// model. No retries are attempted; the first failure is returned as is.
func (c *Client) GenerateContent(ctx context.Context, model string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, model)

	var resp GenerateContentResponse
	if err := c.postJSON(ctx, url, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError is the standard Google API error envelope.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return fmt.Errorf("gemini api error %d (%s): %s", e.Error.Code, e.Error.Status, e.Error.Message)
	}
	return fmt.Errorf("gemini api error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
