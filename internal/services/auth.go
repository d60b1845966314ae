package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/auth"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginFailed        = errors.New("login failed")
)

// AuthService handles login, logout and the tenant bootstrap call. On a
// successful login the access token is handed to the token provider so every
// subsequent request carries it.
type AuthService struct {
	client *api.Client
	tokens *auth.TokenProvider
	logger *slog.Logger
}

func NewAuthService(client *api.Client, tokens *auth.TokenProvider, logger *slog.Logger) *AuthService {
	return &AuthService{
		client: client,
		tokens: tokens,
		logger: logger,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	req := models.LoginRequest{Username: username, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Post[models.LoginResponse](ctx, s.client, "/v0/auth/login", req, nil)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.Code == 401 {
			s.logger.Warn("login rejected", "username", username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %s", ErrLoginFailed, err.Error())
	}

	if resp.Data.AccessToken == "" {
		return nil, ErrLoginFailed
	}

	s.tokens.SetToken(resp.Data.AccessToken)
	s.logger.Info("logged in", "username", username)

	return &resp.Data, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	_, err := api.Post[struct{}](ctx, s.client, "/v0/auth/logout", nil, nil)
	s.tokens.Clear()
	if err != nil {
		// The local session is cleared either way; report the remote failure.
		s.logger.Warn("remote logout failed", "error", err)
		return err
	}
	return nil
}

// Tenants lists the tenants the authenticated user can select. This is the
// bootstrap call that always carries the tenant header.
func (s *AuthService) Tenants(ctx context.Context) ([]models.Tenant, error) {
	resp, err := api.Get[[]models.Tenant](ctx, s.client, api.TenantListPath, nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
