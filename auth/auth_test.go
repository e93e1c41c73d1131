package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIKeyAuthenticatorRequiresKey(t *testing.T) {
	_, err := NewAPIKeyAuthenticator("")
	require.Error(t, err)
}

func TestAPIKeyAuthenticatorBuildsClient(t *testing.T) {
	a, err := NewAPIKeyAuthenticator("test-key")
	require.NoError(t, err)

	client, err := a.GetHTTPClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestServiceAccountAuthenticatorMissingFile(t *testing.T) {
	_, err := NewServiceAccountAuthenticator(Config{CredentialsPath: "/does/not/exist.json"})
	require.Error(t, err)
}

func TestServiceAccountAuthenticatorScopes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	a, err := NewServiceAccountAuthenticator(Config{CredentialsPath: path})
	require.NoError(t, err)
	require.Equal(t, []string{cloudPlatformScope}, a.scopes)

	custom, err := NewServiceAccountAuthenticator(Config{
		CredentialsPath: path,
		Scopes:          []string{"https://www.googleapis.com/auth/generative-language"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"https://www.googleapis.com/auth/generative-language"}, custom.scopes)
}

func TestServiceAccountAuthenticatorBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	a, err := NewServiceAccountAuthenticator(Config{CredentialsPath: path})
	require.NoError(t, err)

	_, err = a.GetHTTPClient(context.Background())
	require.Error(t, err)
}
