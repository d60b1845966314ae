package services

import (
	"context"
	"log/slog"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/mockdata"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

// ReasonCodeService manages the void/refund/discount reason codes.
type ReasonCodeService struct {
	client   *api.Client
	logger   *slog.Logger
	mockMode bool
}

func NewReasonCodeService(client *api.Client, logger *slog.Logger, mockMode bool) *ReasonCodeService {
	return &ReasonCodeService{
		client:   client,
		logger:   logger,
		mockMode: mockMode,
	}
}

func (s *ReasonCodeService) List(ctx context.Context, category *models.ReasonCodeCategory) ([]models.ReasonCode, error) {
	query := api.Query{}
	if category != nil {
		query["category"] = string(*category)
	}

	resp, err := api.Get[[]models.ReasonCode](ctx, s.client, "/v0/reason-codes", query)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("reason code list failed, using mock data", "error", err)
			return mockdata.ReasonCodes(), nil
		}
		return nil, err
	}
	return resp.Data, nil
}

func (s *ReasonCodeService) Create(ctx context.Context, req models.CreateReasonCodeRequest) (*models.ReasonCode, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Post[models.ReasonCode](ctx, s.client, "/v0/reason-codes", req, nil)
	if err != nil {
		s.logger.Error("reason code create failed", "code", req.Code, "error", err)
		return nil, err
	}

	s.logger.Info("reason code created", "id", resp.Data.ID, "code", resp.Data.Code)
	return &resp.Data, nil
}

func (s *ReasonCodeService) Update(ctx context.Context, id string, req models.UpdateReasonCodeRequest) (*models.ReasonCode, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Patch[models.ReasonCode](ctx, s.client, "/v0/reason-codes/"+id, req, nil)
	if err != nil {
		s.logger.Error("reason code update failed", "id", id, "error", err)
		return nil, err
	}
	return &resp.Data, nil
}

func (s *ReasonCodeService) Delete(ctx context.Context, id string) error {
	if _, err := api.Delete[struct{}](ctx, s.client, "/v0/reason-codes/"+id); err != nil {
		s.logger.Error("reason code delete failed", "id", id, "error", err)
		return err
	}
	s.logger.Info("reason code deleted", "id", id)
	return nil
}
