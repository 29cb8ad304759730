package cmsclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, cms.ErrConfigRequired)
	})

	t.Run("requires endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &cms.Config{})
		require.ErrorIs(t, err, cms.ErrEndpointRequired)
	})

	t.Run("normalizes trailing slash", func(t *testing.T) {
		t.Parallel()

		config := &cms.Config{Endpoint: "https://api.inkwell.io/", AccessToken: "tok"}

		_, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.inkwell.io", config.Endpoint)
	})

	t.Run("defaults to https scheme", func(t *testing.T) {
		t.Parallel()

		config := &cms.Config{Endpoint: "api.inkwell.io", AccessToken: "tok"}

		_, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.inkwell.io", config.Endpoint)
	})

	t.Run("skips auth discovery with access token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected during client construction")
		}))
		defer server.Close()

		client, err := New(context.Background(), &cms.Config{Endpoint: server.URL, AccessToken: "tok"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew_AuthDiscovery(t *testing.T) {
	t.Parallel()
	t.Run("discovers token URL from gateway root", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/", r.URL.Path)

			_ = json.NewEncoder(w).Encode(cms.RootInfo{
				Links: map[string]cms.Link{
					"auth": {Href: "https://auth.inkwell.io/"},
				},
			})
		}))
		defer server.Close()

		config := &cms.Config{
			Endpoint:     server.URL,
			ClientID:     "id",
			ClientSecret: "secret",
		}

		_, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://auth.inkwell.io/oauth/token", config.TokenURL)
	})

	t.Run("explicit token URL wins over discovery", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no discovery request expected")
		}))
		defer server.Close()

		config := &cms.Config{
			Endpoint:     server.URL,
			ClientID:     "id",
			ClientSecret: "secret",
			TokenURL:     "https://auth.inkwell.io/oauth/token",
		}

		_, err := New(context.Background(), config)
		require.NoError(t, err)
	})

	t.Run("fails when gateway has no auth link", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(cms.RootInfo{Links: map[string]cms.Link{}})
		}))
		defer server.Close()

		_, err := New(context.Background(), &cms.Config{
			Endpoint: server.URL,
			ClientID: "id",
		})
		require.ErrorIs(t, err, cms.ErrNoAuthEndpoint)
	})

	t.Run("fails when gateway root is unreachable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		server.Close()

		_, err := New(context.Background(), &cms.Config{
			Endpoint: server.URL,
			Username: "editor",
			Password: "s3cret",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "discovering auth endpoint")
	})
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()
	t.Run("NewWithEndpoint", func(t *testing.T) {
		t.Parallel()

		client, err := NewWithEndpoint(context.Background(), "https://api.inkwell.io")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("NewWithToken", func(t *testing.T) {
		t.Parallel()

		client, err := NewWithToken(context.Background(), "https://api.inkwell.io", "tok")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("NewWithClientCredentials discovers auth", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(cms.RootInfo{
				Links: map[string]cms.Link{
					"auth": {Href: "https://auth.inkwell.io"},
				},
			})
		}))
		defer server.Close()

		client, err := NewWithClientCredentials(context.Background(), server.URL, "id", "secret")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("NewWithPassword discovers auth", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(cms.RootInfo{
				Links: map[string]cms.Link{
					"auth": {Href: "https://auth.inkwell.io"},
				},
			})
		}))
		defer server.Close()

		client, err := NewWithPassword(context.Background(), server.URL, "editor", "s3cret")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
