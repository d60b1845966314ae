package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID:   "user-1",
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenProvider_ValidToken(t *testing.T) {
	provider := NewTokenProvider(nil)
	token := signedToken(t, time.Now().Add(time.Hour))

	provider.SetToken(token)

	got, ok := provider.AccessToken()
	assert.True(t, ok)
	assert.Equal(t, token, got)

	claims, err := provider.Claims()
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestTokenProvider_ExpiredTokenWithheld(t *testing.T) {
	provider := NewTokenProvider(nil)
	provider.SetToken(signedToken(t, time.Now().Add(-time.Minute)))

	_, ok := provider.AccessToken()
	assert.False(t, ok)

	_, err := provider.Claims()
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenProvider_OpaqueTokenStored(t *testing.T) {
	provider := NewTokenProvider(nil)
	provider.SetToken("not-a-jwt")

	got, ok := provider.AccessToken()
	assert.True(t, ok)
	assert.Equal(t, "not-a-jwt", got)

	_, err := provider.Claims()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestTokenProvider_Empty(t *testing.T) {
	provider := NewTokenProvider(nil)

	_, ok := provider.AccessToken()
	assert.False(t, ok)

	_, err := provider.Claims()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestTokenProvider_Clear(t *testing.T) {
	provider := NewTokenProvider(nil)
	provider.SetToken(signedToken(t, time.Now().Add(time.Hour)))
	provider.Clear()

	_, ok := provider.AccessToken()
	assert.False(t, ok)
}
