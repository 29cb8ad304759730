package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token *Token
		want  bool
	}{
		{
			name:  "nil token",
			token: nil,
			want:  false,
		},
		{
			name:  "empty access token",
			token: &Token{ExpiresAt: time.Now().Add(time.Hour)},
			want:  false,
		},
		{
			name:  "valid token",
			token: &Token{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)},
			want:  true,
		},
		{
			name:  "expired token",
			token: &Token{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)},
			want:  false,
		},
		{
			name:  "token inside expiry skew",
			token: &Token{AccessToken: "tok", ExpiresAt: time.Now().Add(10 * time.Second)},
			want:  false,
		},
		{
			name:  "token without expiry never expires",
			token: &Token{AccessToken: "tok"},
			want:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.token.Valid())
		})
	}
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	store := &tokenStore{}
	assert.Nil(t, store.Get())

	token := &Token{AccessToken: "tok"}
	store.Set(token)
	assert.Same(t, token, store.Get())
}
