package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/mockdata"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

var ErrSystemRoleImmutable = errors.New("system roles cannot be modified or deleted")

// RoleService manages roles and exposes the permission catalog.
type RoleService struct {
	client   *api.Client
	logger   *slog.Logger
	mockMode bool
}

func NewRoleService(client *api.Client, logger *slog.Logger, mockMode bool) *RoleService {
	return &RoleService{
		client:   client,
		logger:   logger,
		mockMode: mockMode,
	}
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	resp, err := api.Get[[]models.Role](ctx, s.client, "/v0/roles", nil)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("role list failed, using mock data", "error", err)
			return mockdata.Roles(), nil
		}
		return nil, err
	}
	return resp.Data, nil
}

func (s *RoleService) Get(ctx context.Context, id string) (*models.Role, error) {
	resp, err := api.Get[models.Role](ctx, s.client, "/v0/roles/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *RoleService) Create(ctx context.Context, req models.CreateRoleRequest) (*models.Role, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Post[models.Role](ctx, s.client, "/v0/roles", req, nil)
	if err != nil {
		s.logger.Error("role create failed", "name", req.Name, "error", err)
		return nil, err
	}

	s.logger.Info("role created", "id", resp.Data.ID, "name", resp.Data.Name)
	return &resp.Data, nil
}

func (s *RoleService) Update(ctx context.Context, id string, req models.UpdateRoleRequest) (*models.Role, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err == nil && current.IsSystem {
		return nil, ErrSystemRoleImmutable
	}

	resp, err := api.Patch[models.Role](ctx, s.client, "/v0/roles/"+id, req, nil)
	if err != nil {
		s.logger.Error("role update failed", "id", id, "error", err)
		return nil, err
	}
	return &resp.Data, nil
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err == nil && current.IsSystem {
		return ErrSystemRoleImmutable
	}

	if _, err := api.Delete[struct{}](ctx, s.client, "/v0/roles/"+id); err != nil {
		s.logger.Error("role delete failed", "id", id, "error", err)
		return err
	}

	s.logger.Info("role deleted", "id", id)
	return nil
}

// Permissions returns the full permission catalog for role editing screens.
func (s *RoleService) Permissions(ctx context.Context) ([]models.Permission, error) {
	resp, err := api.Get[[]models.Permission](ctx, s.client, "/v0/permissions", nil)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("permission catalog fetch failed, using mock data", "error", err)
			return mockdata.Permissions(), nil
		}
		return nil, err
	}
	return resp.Data, nil
}
