package constants

import "errors"

// Configuration errors.
var (
	ErrNoEndpointConfigured = errors.New("no API endpoint configured, use 'cms config set api <url>' or --api")
	ErrConfigNotFound       = errors.New("configuration not found")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
)

// Auth errors.
var (
	ErrNoAuthEndpoint   = errors.New("no auth endpoint configured and unable to discover it from the gateway root")
	ErrNotAuthenticated = errors.New("not authenticated, run 'cms login' first")
)

// CLI errors.
var (
	ErrSchemaRequired      = errors.New("schema name is required, pass --schema")
	ErrInvalidFilterFlag   = errors.New("invalid --filter-eq value, expected field=value")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
