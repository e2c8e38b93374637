package push

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// CredentialProvider yields a bearer credential for the messaging provider.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// OAuthCredentialProvider holds a lazily populated {token, expiry} pair behind a
// TokenSource and refreshes it only when missing or expired.
type OAuthCredentialProvider struct {
	source oauth2.TokenSource
}

// NewServiceAccountProvider builds a provider from a service account key file.
func NewServiceAccountProvider(path string) (*OAuthCredentialProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account file: %w", err)
	}
	cfg, err := google.JWTConfigFromJSON(data, messagingScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account file: %w", err)
	}
	ts := cfg.TokenSource(context.Background())
	return &OAuthCredentialProvider{source: oauth2.ReuseTokenSource(nil, ts)}, nil
}

// Token returns the cached access token, refreshing it when expired.
func (p *OAuthCredentialProvider) Token(ctx context.Context) (string, error) {
	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to acquire access token: %w", err)
	}
	return tok.AccessToken, nil
}

// StaticCredentialProvider returns a fixed token. Used in tests.
type StaticCredentialProvider string

func (s StaticCredentialProvider) Token(ctx context.Context) (string, error) {
	return string(s), nil
}
