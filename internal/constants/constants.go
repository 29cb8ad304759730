package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as token grants and
	// endpoint discovery.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry defaults consumed by the transport.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the base delay of the exponential backoff.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the backoff delay.
	DefaultRetryWaitMax = 30 * time.Second
)

// Paging defaults.
const (
	// StandardPageSize is the default $top for listing commands.
	StandardPageSize = 50

	// MaxPageSize is the largest $top the gateway accepts.
	MaxPageSize = 200
)

// HTTP status codes commonly branched on.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusNoContent represents a successful response without a body.
	HTTPStatusNoContent = 204

	// HTTPStatusBadRequest represents a validation failure.
	HTTPStatusBadRequest = 400

	// HTTPStatusUnauthorized represents a missing or rejected credential.
	HTTPStatusUnauthorized = 401

	// HTTPStatusNotFound represents a missing resource.
	HTTPStatusNotFound = 404

	// HTTPStatusTooManyRequests represents gateway rate limiting.
	HTTPStatusTooManyRequests = 429
)
