package auth

import (
	"context"
	"sync"
	"time"
)

// TokenManager manages access tokens for API authentication.
type TokenManager interface {
	// GetToken returns a valid access token, refreshing if necessary.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a token refresh.
	RefreshToken(ctx context.Context) error

	// SetToken sets the current token and its expiry.
	SetToken(token string, expiresAt time.Time)
}

// Token holds an access token and its lifetime metadata.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"`
	ExpiresAt    time.Time `json:"-"`
}

// expirySkew is subtracted from the token lifetime so a token is refreshed
// shortly before the gateway would reject it.
const expirySkew = 30 * time.Second

// Valid reports whether the token exists and has not expired.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Before(t.ExpiresAt.Add(-expirySkew))
}

// tokenStore is a concurrency-safe holder for the current token.
type tokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// Get returns the stored token.
func (s *tokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *tokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}
