package auth

import (
	"context"
	"net/http"
)

// Authenticator builds an HTTP client that carries credentials for the
// hosted model API on every request.
type Authenticator interface {
	GetHTTPClient(ctx context.Context) (*http.Client, error)
}

type Config struct {
	CredentialsPath string
	Scopes          []string
}
