package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/inkwell-io/cms-client/internal/auth"
	"github.com/inkwell-io/cms-client/internal/http"
	"github.com/inkwell-io/cms-client/pkg/cms"
)

// Client implements the cms.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       cms.Logger

	contents *ContentsClient
	assets   *AssetsClient
	schemas  *SchemasClient
}

// New creates a new API client from explicit configuration.
func New(ctx context.Context, config *cms.Config) (*Client, error) {
	if config == nil {
		return nil, cms.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, cms.ErrEndpointRequired
	}

	tokenManager := createTokenManager(config)

	opts := []http.Option{}
	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger), http.WithDebug(config.Debug))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = time.Second
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, config.RetryWaitMax))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	httpClient := http.NewClient(config.Endpoint, tokenManager, opts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
	}

	client.contents = NewContentsClient(httpClient)
	client.assets = NewAssetsClient(httpClient)
	client.schemas = NewSchemasClient(httpClient)

	return client, nil
}

// createTokenManager creates the appropriate token manager for the config.
// Grant credentials select the OAuth2 manager even when an access token is
// also present: the token seeds the manager's store and is served until it
// expires, after which the configured grant takes over. A bare access token
// gets the static manager, which cannot refresh.
func createTokenManager(config *cms.Config) auth.TokenManager {
	if config.ClientID != "" || config.Username != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     config.TokenURL,
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Username:     config.Username,
			Password:     config.Password,
			AccessToken:  config.AccessToken,
		})
	}

	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	return nil // No authentication
}

// Contents implements cms.Client.Contents.
func (c *Client) Contents() cms.ContentsClient {
	return c.contents
}

// Assets implements cms.Client.Assets.
func (c *Client) Assets() cms.AssetsClient {
	return c.assets
}

// Schemas implements cms.Client.Schemas.
func (c *Client) Schemas() cms.SchemasClient {
	return c.schemas
}

// GetInfo implements cms.Client.GetInfo.
func (c *Client) GetInfo(ctx context.Context) (*cms.Info, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/info", nil)
	if err != nil {
		return nil, fmt.Errorf("getting info: %w", err)
	}

	var info cms.Info
	if err := json.Unmarshal(resp.Body, &info); err != nil {
		return nil, fmt.Errorf("parsing info response: %w", err)
	}

	return &info, nil
}

// Ping implements cms.Client.Ping by fetching the gateway root.
func (c *Client) Ping(ctx context.Context) (*cms.RootInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/", nil)
	if err != nil {
		return nil, fmt.Errorf("pinging gateway: %w", err)
	}

	var root cms.RootInfo
	if err := json.Unmarshal(resp.Body, &root); err != nil {
		return nil, fmt.Errorf("parsing root response: %w", err)
	}

	return &root, nil
}

// staticTokenManager serves a fixed token that cannot be refreshed.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return cms.ErrNotAuthenticated
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}
