// Package auth holds the client-side access token and exposes it to the API
// client. The token is issued by the backend; the provider only inspects its
// claims (unverified, the signing key lives server-side) to know the user it
// belongs to and to stop attaching it once expired.
package auth

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no access token available")
	ErrTokenExpired = errors.New("access token has expired")
)

// Claims mirrors the claims the backend puts into access tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenProvider stores the current access token. Safe for concurrent use.
type TokenProvider struct {
	mu     sync.RWMutex
	token  string
	claims *Claims
	logger *slog.Logger
}

func NewTokenProvider(logger *slog.Logger) *TokenProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenProvider{logger: logger}
}

// SetToken stores a freshly issued token. Tokens that do not parse as JWTs
// are kept as opaque strings with no expiry tracking.
func (p *TokenProvider) SetToken(token string) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		p.logger.Debug("access token is not a parseable JWT, storing as opaque", "error", err)
		claims = nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
	p.claims = claims
}

// Clear drops the stored token, e.g. on logout.
func (p *TokenProvider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	p.claims = nil
}

// AccessToken returns the current token. Expired tokens are withheld so
// requests fail with the backend's 401 rather than a stale bearer header.
func (p *TokenProvider) AccessToken() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == "" {
		return "", false
	}
	if p.claims != nil && p.claims.ExpiresAt != nil && p.claims.ExpiresAt.Before(time.Now()) {
		return "", false
	}
	return p.token, true
}

// Claims returns the claims of the current token, when it was a parseable JWT.
func (p *TokenProvider) Claims() (*Claims, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == "" {
		return nil, ErrNoToken
	}
	if p.claims == nil {
		return nil, ErrNoToken
	}
	if p.claims.ExpiresAt != nil && p.claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}
	return p.claims, nil
}
