package services

import (
	"context"
	"log/slog"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/mockdata"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

// UserService manages back-office user accounts.
type UserService struct {
	client   *api.Client
	logger   *slog.Logger
	mockMode bool
}

func NewUserService(client *api.Client, logger *slog.Logger, mockMode bool) *UserService {
	return &UserService{
		client:   client,
		logger:   logger,
		mockMode: mockMode,
	}
}

func (s *UserService) List(ctx context.Context, req models.UserListRequest) ([]models.User, error) {
	query := api.Query{}
	if req.Page > 0 {
		query["page"] = req.Page
	}
	if req.PageSize > 0 {
		query["page_size"] = req.PageSize
	}
	if req.Role != nil {
		query["role"] = string(*req.Role)
	}
	if req.Search != nil {
		query["search"] = *req.Search
	}

	resp, err := api.Get[[]models.User](ctx, s.client, "/v0/users", query)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("user list failed, using mock data", "error", err)
			return mockdata.Users(), nil
		}
		return nil, err
	}
	return resp.Data, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	resp, err := api.Get[models.User](ctx, s.client, "/v0/users/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Post[models.User](ctx, s.client, "/v0/users", req, nil)
	if err != nil {
		s.logger.Error("user create failed", "username", req.Username, "error", err)
		return nil, err
	}

	s.logger.Info("user created", "id", resp.Data.ID, "username", resp.Data.Username)
	return &resp.Data, nil
}

func (s *UserService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Patch[models.User](ctx, s.client, "/v0/users/"+id, req, nil)
	if err != nil {
		s.logger.Error("user update failed", "id", id, "error", err)
		return nil, err
	}
	return &resp.Data, nil
}

// Deactivate disables an account; the backend keeps the record for audit.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if _, err := api.Delete[struct{}](ctx, s.client, "/v0/users/"+id); err != nil {
		s.logger.Error("user deactivate failed", "id", id, "error", err)
		return err
	}
	s.logger.Info("user deactivated", "id", id)
	return nil
}
