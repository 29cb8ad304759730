// Package cmsclient provides the main entry point for creating Inkwell API clients.
package cmsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/inkwell-io/cms-client/internal/client"
	"github.com/inkwell-io/cms-client/internal/constants"
	"github.com/inkwell-io/cms-client/pkg/cms"
)

// New creates a new API client with automatic auth endpoint discovery.
func New(ctx context.Context, config *cms.Config) (cms.Client, error) {
	if config == nil {
		return nil, cms.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, cms.ErrEndpointRequired
	}

	// Normalize the endpoint
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	// If we need authentication and don't have a token URL, discover the
	// auth endpoint from the gateway root
	if needsAuth(config) && config.TokenURL == "" {
		authURL, err := discoverAuthEndpoint(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("discovering auth endpoint: %w", err)
		}

		config.TokenURL = strings.TrimSuffix(authURL, "/") + "/oauth/token"
	}

	cmsClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cmsClient, nil
}

// needsAuth checks if the config requires a token grant. Grant credentials
// need a token URL even when an access token is also configured, since the
// token manager falls back to the grant once that token expires.
func needsAuth(config *cms.Config) bool {
	return config.Username != "" || config.ClientID != ""
}

// discoverAuthEndpoint discovers the auth service URL from the gateway root.
func discoverAuthEndpoint(ctx context.Context, endpoint string) (string, error) {
	httpClient := &http.Client{
		Timeout: constants.ShortHTTPTimeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"/", nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("getting gateway root: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", fmt.Errorf("gateway root request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var root cms.RootInfo

	err = json.NewDecoder(resp.Body).Decode(&root)
	if err != nil {
		return "", fmt.Errorf("parsing gateway root: %w", err)
	}

	authLink, ok := root.Links["auth"]
	if !ok || authLink.Href == "" {
		return "", cms.ErrNoAuthEndpoint
	}

	return authLink.Href, nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no auth).
func NewWithEndpoint(ctx context.Context, endpoint string) (cms.Client, error) {
	return New(ctx, &cms.Config{
		Endpoint: endpoint,
	})
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(ctx context.Context, endpoint, token string) (cms.Client, error) {
	return New(ctx, &cms.Config{
		Endpoint:    endpoint,
		AccessToken: token,
	})
}

// NewWithClientCredentials creates a new client using OAuth2 client credentials.
func NewWithClientCredentials(ctx context.Context, endpoint, clientID, clientSecret string) (cms.Client, error) {
	return New(ctx, &cms.Config{
		Endpoint:     endpoint,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewWithPassword creates a new client using username/password authentication.
func NewWithPassword(ctx context.Context, endpoint, username, password string) (cms.Client, error) {
	return New(ctx, &cms.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}
