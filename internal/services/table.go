package services

import (
	"context"
	"log/slog"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/mockdata"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

// TableService manages the floor plan tables and their reservations.
type TableService struct {
	client   *api.Client
	logger   *slog.Logger
	mockMode bool
}

func NewTableService(client *api.Client, logger *slog.Logger, mockMode bool) *TableService {
	return &TableService{
		client:   client,
		logger:   logger,
		mockMode: mockMode,
	}
}

func (s *TableService) List(ctx context.Context, zone *string) ([]models.Table, error) {
	query := api.Query{}
	if zone != nil {
		query["zone"] = *zone
	}

	resp, err := api.Get[[]models.Table](ctx, s.client, "/v0/tables", query)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("table list failed, using mock data", "error", err)
			return mockdata.Tables(), nil
		}
		return nil, err
	}
	return resp.Data, nil
}

func (s *TableService) Get(ctx context.Context, id string) (*models.Table, error) {
	resp, err := api.Get[models.Table](ctx, s.client, "/v0/tables/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *TableService) Create(ctx context.Context, req models.CreateTableRequest) (*models.Table, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Post[models.Table](ctx, s.client, "/v0/tables", req, nil)
	if err != nil {
		s.logger.Error("table create failed", "number", req.Number, "error", err)
		return nil, err
	}

	s.logger.Info("table created", "id", resp.Data.ID, "number", resp.Data.Number)
	return &resp.Data, nil
}

func (s *TableService) Update(ctx context.Context, id string, req models.UpdateTableRequest) (*models.Table, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := api.Patch[models.Table](ctx, s.client, "/v0/tables/"+id, req, nil)
	if err != nil {
		s.logger.Error("table update failed", "id", id, "error", err)
		return nil, err
	}
	return &resp.Data, nil
}

func (s *TableService) Delete(ctx context.Context, id string) error {
	if _, err := api.Delete[struct{}](ctx, s.client, "/v0/tables/"+id); err != nil {
		s.logger.Error("table delete failed", "id", id, "error", err)
		return err
	}
	s.logger.Info("table deleted", "id", id)
	return nil
}

// Reservations lists the upcoming reservations for one table.
func (s *TableService) Reservations(ctx context.Context, tableID string) ([]models.Reservation, error) {
	resp, err := api.Get[[]models.Reservation](ctx, s.client, "/v0/tables/"+tableID+"/reservations", nil)
	if err != nil {
		if s.mockMode {
			s.logger.Warn("reservation list failed, using mock data", "table_id", tableID, "error", err)
			return mockdata.Reservations(tableID), nil
		}
		return nil, err
	}
	return resp.Data, nil
}
