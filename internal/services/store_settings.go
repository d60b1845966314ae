package services

import (
	"context"
	"log/slog"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/mockdata"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

// StoreSettingsService reads and saves the store configuration record. In
// mock mode read calls fall back to fixture data when the API is
// unreachable; writes never do.
type StoreSettingsService struct {
	client   *api.Client
	logger   *slog.Logger
	mockMode bool
}

func NewStoreSettingsService(client *api.Client, logger *slog.Logger, mockMode bool) *StoreSettingsService {
	return &StoreSettingsService{
		client:   client,
		logger:   logger,
		mockMode: mockMode,
	}
}

func (s *StoreSettingsService) Get(ctx context.Context) (*models.StoreSettings, error) {
	resp, err := api.Get[models.StoreSettings](ctx, s.client, "/v0/store/settings", nil)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("store settings fetch failed, using mock data", "error", err)
			return mockdata.StoreSettings(), nil
		}
		return nil, err
	}
	return &resp.Data, nil
}

func (s *StoreSettingsService) Update(ctx context.Context, req models.UpdateStoreSettingsRequest) (*models.StoreSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Put[models.StoreSettings](ctx, s.client, "/v0/store/settings", req, nil)
	if err != nil {
		s.logger.Error("store settings update failed", "error", err)
		return nil, err
	}

	s.logger.Info("store settings updated", "store", resp.Data.StoreInfo.Name)
	return &resp.Data, nil
}

// ReceiptTemplates lists the receipt layouts the backend offers.
func (s *StoreSettingsService) ReceiptTemplates(ctx context.Context) ([]models.ReceiptTemplate, error) {
	resp, err := api.Get[[]models.ReceiptTemplate](ctx, s.client, "/v0/store/settings/receipts", nil)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("receipt template fetch failed, using mock data", "error", err)
			return mockdata.ReceiptTemplates(), nil
		}
		return nil, err
	}
	return resp.Data, nil
}
