package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/inkwell-io/cms-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenURL         = errors.New("no token URL configured")
	ErrNoGrantCredentials = errors.New("no credentials available for token grant")
)

// OAuth2Config configures the OAuth2 token manager.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	RefreshToken string
	AccessToken  string
}

// OAuth2TokenManager obtains and refreshes access tokens from the gateway's
// OAuth2 token endpoint. It supports the refresh_token, password, and
// client_credentials grants, preferring them in that order.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	httpClient *http.Client
	store      *tokenStore
	mutex      sync.Mutex
}

// NewOAuth2TokenManager creates a new OAuth2 token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	manager := &OAuth2TokenManager{
		config: config,
		httpClient: &http.Client{
			Timeout: constants.ShortHTTPTimeout,
		},
		store: &tokenStore{},
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
		})
	}

	return manager
}

// GetToken returns a valid access token, refreshing if necessary.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a token refresh using the best available grant.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if m.store.Get().Valid() {
		return nil
	}

	if m.config.TokenURL == "" {
		return ErrNoTokenURL
	}

	form, useBasicAuth, err := m.grantForm()
	if err != nil {
		return err
	}

	token, err := m.requestToken(ctx, form, useBasicAuth)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken sets the current token and its expiry.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	current := m.store.Get()

	refreshToken := ""
	if current != nil {
		refreshToken = current.RefreshToken
	}

	m.store.Set(&Token{
		AccessToken:  token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	})
}

// grantForm selects the grant type and builds the token request form.
func (m *OAuth2TokenManager) grantForm() (url.Values, bool, error) {
	form := url.Values{}

	current := m.store.Get()
	refreshToken := m.config.RefreshToken

	if current != nil && current.RefreshToken != "" {
		refreshToken = current.RefreshToken
	}

	switch {
	case refreshToken != "":
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", refreshToken)

		return form, m.config.ClientID != "", nil

	case m.config.Username != "" && m.config.Password != "":
		form.Set("grant_type", "password")
		form.Set("username", m.config.Username)
		form.Set("password", m.config.Password)

		return form, m.config.ClientID != "", nil

	case m.config.ClientID != "" && m.config.ClientSecret != "":
		form.Set("grant_type", "client_credentials")

		return form, true, nil

	default:
		return nil, false, ErrNoGrantCredentials
	}
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context, form url.Values, useBasicAuth bool) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if useBasicAuth {
		req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
