package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/stretchr/testify/require"
)

// newTestClient starts an httptest server around handler and returns a client
// pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(context.Background(), &cms.Config{
		Endpoint:    server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	return client
}
