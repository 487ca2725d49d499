package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"kanban-board-client/internal/apiclient"
	"kanban-board-client/internal/apperr"
	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/metrics"
	"kanban-board-client/internal/model"
)

const columnsEndpoint = "/columns"

// ColumnService defines the interface for column operations against the
// remote store.
type ColumnService interface {
	GetAll(ctx context.Context) ([]model.Column, error)
	GetByBoard(ctx context.Context, boardID int) ([]model.Column, error)
	GetByID(ctx context.Context, id int) (*model.Column, error)
	Create(ctx context.Context, req dto.CreateColumnRequest) (*model.Column, error)
	Update(ctx context.Context, id int, req dto.UpdateColumnRequest) (*model.Column, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]model.Column, error)
}

// columnServiceImpl is the implementation of ColumnService
type columnServiceImpl struct {
	api     APIClient
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewColumnService creates a new instance of ColumnService
func NewColumnService(api APIClient, m *metrics.Metrics, logger *zap.Logger) ColumnService {
	return &columnServiceImpl{
		api:     api,
		metrics: m,
		logger:  logger,
	}
}

// GetAll fetches every column across all boards.
func (s *columnServiceImpl) GetAll(ctx context.Context) ([]model.Column, error) {
	data, err := s.api.Get(ctx, columnsEndpoint)
	if err != nil {
		s.logger.Error("Failed to fetch columns", zap.Error(err))
		return nil, err
	}
	columns, err := model.DecodeColumnList(data)
	if err != nil {
		s.logger.Error("Failed to decode columns", zap.Error(err))
		return nil, err
	}
	return columns, nil
}

// GetByBoard fetches the full collection and filters by board id
// client-side. The backend exposes no nested collection endpoint, so the
// fallback strategy is the only one.
func (s *columnServiceImpl) GetByBoard(ctx context.Context, boardID int) ([]model.Column, error) {
	columns, err := s.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch columns for board", zap.Int("board_id", boardID), zap.Error(err))
		return nil, err
	}
	filtered := make([]model.Column, 0, len(columns))
	for _, c := range columns {
		if c.BoardID == boardID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// GetByID fetches a single column.
func (s *columnServiceImpl) GetByID(ctx context.Context, id int) (*model.Column, error) {
	data, err := s.api.Get(ctx, apiclient.PathID(columnsEndpoint, id))
	if err != nil {
		s.logger.Error("Failed to fetch column", zap.Int("column_id", id), zap.Error(err))
		return nil, err
	}
	column, err := model.DecodeColumn(data)
	if err != nil {
		s.logger.Error("Failed to decode column", zap.Int("column_id", id), zap.Error(err))
		return nil, err
	}
	return column, nil
}

// Create validates the payload locally and posts it. A missing parent id
// or a blank title never reaches the network.
func (s *columnServiceImpl) Create(ctx context.Context, req dto.CreateColumnRequest) (*model.Column, error) {
	if strings.TrimSpace(req.Titulo) == "" {
		return nil, apperr.NewValidation("titulo", "El título de la columna es requerido")
	}
	if req.BoardID == 0 {
		return nil, apperr.NewValidation("board_id", "El ID del tablero es requerido")
	}
	if req.Posicion < 0 {
		return nil, apperr.NewValidation("posicion", "La posición no puede ser negativa")
	}

	data, err := s.api.Post(ctx, columnsEndpoint, req)
	if err != nil {
		s.logger.Error("Failed to create column", zap.Int("board_id", req.BoardID), zap.Error(err))
		return nil, err
	}
	column, err := model.DecodeColumn(data)
	if err != nil {
		s.logger.Error("Failed to decode created column", zap.Error(err))
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementColumnCreated()
	}
	return column, nil
}

// Update rejects blank titles and empty payloads before issuing the request.
func (s *columnServiceImpl) Update(ctx context.Context, id int, req dto.UpdateColumnRequest) (*model.Column, error) {
	if req.Empty() {
		return nil, apperr.NewValidation("", "Al menos un campo debe ser proporcionado para la actualización")
	}
	if req.Titulo != nil && strings.TrimSpace(*req.Titulo) == "" {
		return nil, apperr.NewValidation("titulo", "El título no puede estar vacío")
	}
	if req.Posicion != nil && *req.Posicion < 0 {
		return nil, apperr.NewValidation("posicion", "La posición no puede ser negativa")
	}

	data, err := s.api.Put(ctx, apiclient.PathID(columnsEndpoint, id), req)
	if err != nil {
		s.logger.Error("Failed to update column", zap.Int("column_id", id), zap.Error(err))
		return nil, err
	}
	column, err := model.DecodeColumn(data)
	if err != nil {
		s.logger.Error("Failed to decode updated column", zap.Int("column_id", id), zap.Error(err))
		return nil, err
	}
	return column, nil
}

// Delete removes the column on the server. Cleanup of its tasks is the
// server's responsibility.
func (s *columnServiceImpl) Delete(ctx context.Context, id int) error {
	if _, err := s.api.Delete(ctx, apiclient.PathID(columnsEndpoint, id)); err != nil {
		s.logger.Error("Failed to delete column", zap.Int("column_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Search filters the full collection client-side by title.
func (s *columnServiceImpl) Search(ctx context.Context, query string) ([]model.Column, error) {
	columns, err := s.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to search columns", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	q := strings.ToLower(query)
	filtered := make([]model.Column, 0, len(columns))
	for _, c := range columns {
		if strings.Contains(strings.ToLower(c.Titulo), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
