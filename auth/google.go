package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// APIKeyAuthenticator authenticates against the Gemini Developer API with a
// plain API key.
type APIKeyAuthenticator struct {
	apiKey string
}

func NewAPIKeyAuthenticator(apiKey string) (*APIKeyAuthenticator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required, set GEMINI_API_KEY")
	}
	return &APIKeyAuthenticator{apiKey: apiKey}, nil
}

func (a *APIKeyAuthenticator) GetHTTPClient(ctx context.Context) (*http.Client, error) {
	client, _, err := htransport.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to build api key client: %w", err)
	}
	return client, nil
}

// ServiceAccountAuthenticator authenticates against a Vertex AI project with
// service account credentials.
type ServiceAccountAuthenticator struct {
	credentialsJSON []byte
	scopes          []string
}

func NewServiceAccountAuthenticator(cfg Config) (*ServiceAccountAuthenticator, error) {
	b, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials: %w", err)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{cloudPlatformScope}
	}

	return &ServiceAccountAuthenticator{
		credentialsJSON: b,
		scopes:          scopes,
	}, nil
}

func (s *ServiceAccountAuthenticator) GetHTTPClient(ctx context.Context) (*http.Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, s.credentialsJSON, s.scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}
	return oauth2.NewClient(ctx, creds.TokenSource), nil
}
