package cms

import (
	"context"
	"errors"
	"time"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrNoAuthEndpoint   = errors.New("no auth endpoint found in gateway root response")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSchemaRequired   = errors.New("schema name is required")
	ErrContentNotFound  = errors.New("content not found")
	ErrAssetNotFound    = errors.New("asset not found")
)

// ContentsClient provides access to content items of published schemas.
type ContentsClient interface {
	List(ctx context.Context, schema string, query *Query) (*ListResponse[Content], error)
	Get(ctx context.Context, schema, id string) (*Content, error)
	Create(ctx context.Context, schema string, data ContentData) (*Content, error)
	Update(ctx context.Context, schema, id string, data ContentData) (*Content, error)
	Patch(ctx context.Context, schema, id string, data ContentData) (*Content, error)
	Delete(ctx context.Context, schema, id string) error
	Publish(ctx context.Context, schema, id string) (*Content, error)
	Unpublish(ctx context.Context, schema, id string) (*Content, error)
}

// AssetsClient provides access to uploaded assets.
type AssetsClient interface {
	List(ctx context.Context, query *Query) (*ListResponse[Asset], error)
	Get(ctx context.Context, id string) (*Asset, error)
	Update(ctx context.Context, id string, request *AssetUpdateRequest) (*Asset, error)
	Delete(ctx context.Context, id string) error
}

// SchemasClient provides read access to published schemas.
type SchemasClient interface {
	List(ctx context.Context) (*ListResponse[Schema], error)
	Get(ctx context.Context, name string) (*Schema, error)
}

// Client is the typed entry point to the content API.
type Client interface {
	Contents() ContentsClient
	Assets() AssetsClient
	Schemas() SchemasClient

	GetInfo(ctx context.Context) (*Info, error)
	Ping(ctx context.Context) (*RootInfo, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cms.Client.
//
// Configuration is explicit: there is no process-wide current client. Each
// constructed client owns its own configuration, which keeps tests hermetic
// and avoids hidden cross-call state.
//
// Authentication precedence, applied by the concrete client implementation:
//  1. ClientID/ClientSecret: OAuth2 client_credentials grant against TokenURL.
//  2. Username/Password: OAuth2 password grant against TokenURL.
//  3. AccessToken alone: used directly as a static Bearer token.
//  4. No credentials: requests are sent without authentication.
//
// AccessToken combined with grant credentials seeds the OAuth2 token manager:
// the token is served as-is until it expires, then the grant takes over.
//
// If credentials are provided and TokenURL is empty, cmsclient.New discovers
// the auth endpoint from the gateway root ("/" → links.auth).
type Config struct {
	// Endpoint is the base URL of the API gateway, e.g. "https://cloud.inkwell.io".
	// A trailing slash is trimmed and "https://" is assumed when no scheme is given.
	Endpoint string

	// Authentication options (provide one).
	AccessToken  string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string

	// TokenURL is the full OAuth2 token endpoint. If empty and authentication
	// is required, it is discovered from the gateway root.
	TokenURL string

	// HTTPTimeout is the per-request timeout of the underlying HTTP client.
	// Most calls should rely on context timeouts instead.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures
	// (connection errors, 429, and 5xx). Zero selects the default.
	RetryMax int

	// RetryWaitMin is the base delay of the exponential backoff; the Nth
	// retry waits RetryWaitMin * 2^(N-1).
	RetryWaitMin time.Duration

	// RetryWaitMax caps the backoff delay.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when Logger is set.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
