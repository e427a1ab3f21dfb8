package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	token, err := manager.Issue("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejectsBadTokens(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewTokenManager("secret", -time.Hour)
				token, err := expired.Issue("user-1", "client")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				other := NewTokenManager("other-secret", time.Hour)
				token, err := other.Issue("user-1", "client")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "malformed token",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "empty token",
			token: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Parse(tt.token(t))
			assert.Error(t, err)
		})
	}
}
