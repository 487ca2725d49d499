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

const boardsEndpoint = "/boards"

// BoardService defines the interface for board operations against the
// remote store. Errors from the transport propagate unchanged; local
// validation failures are apperr.ValidationError values raised before any
// request is built.
type BoardService interface {
	GetAll(ctx context.Context) ([]model.Board, error)
	GetByID(ctx context.Context, id int) (*model.Board, error)
	Create(ctx context.Context, req dto.CreateBoardRequest) (*model.Board, error)
	Update(ctx context.Context, id int, req dto.UpdateBoardRequest) (*model.Board, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]model.Board, error)
	Stats(ctx context.Context, id int) (*dto.BoardStats, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	api     APIClient
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(api APIClient, m *metrics.Metrics, logger *zap.Logger) BoardService {
	return &boardServiceImpl{
		api:     api,
		metrics: m,
		logger:  logger,
	}
}

// GetAll fetches every board, with nested columns and tasks when the
// backend embeds them.
func (s *boardServiceImpl) GetAll(ctx context.Context) ([]model.Board, error) {
	data, err := s.api.Get(ctx, boardsEndpoint)
	if err != nil {
		s.logger.Error("Failed to fetch boards", zap.Error(err))
		return nil, err
	}
	boards, err := model.DecodeBoardList(data)
	if err != nil {
		s.logger.Error("Failed to decode boards", zap.Error(err))
		return nil, err
	}
	return boards, nil
}

// GetByID fetches a single board with detail.
func (s *boardServiceImpl) GetByID(ctx context.Context, id int) (*model.Board, error) {
	data, err := s.api.Get(ctx, apiclient.PathID(boardsEndpoint, id))
	if err != nil {
		s.logger.Error("Failed to fetch board", zap.Int("board_id", id), zap.Error(err))
		return nil, err
	}
	board, err := model.DecodeBoard(data)
	if err != nil {
		s.logger.Error("Failed to decode board", zap.Int("board_id", id), zap.Error(err))
		return nil, err
	}
	return board, nil
}

// Create validates the payload locally and posts it. A validation failure
// never reaches the network.
func (s *boardServiceImpl) Create(ctx context.Context, req dto.CreateBoardRequest) (*model.Board, error) {
	if strings.TrimSpace(req.Nombre) == "" {
		return nil, apperr.NewValidation("nombre", "El nombre del tablero es requerido")
	}

	data, err := s.api.Post(ctx, boardsEndpoint, req)
	if err != nil {
		s.logger.Error("Failed to create board", zap.Error(err))
		return nil, err
	}
	board, err := model.DecodeBoard(data)
	if err != nil {
		s.logger.Error("Failed to decode created board", zap.Error(err))
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	return board, nil
}

// Update requires at least one field and rejects blank names before
// issuing the request. The server's canonical object is returned.
func (s *boardServiceImpl) Update(ctx context.Context, id int, req dto.UpdateBoardRequest) (*model.Board, error) {
	if req.Empty() {
		return nil, apperr.NewValidation("", "Al menos un campo debe ser proporcionado para la actualización")
	}
	if req.Nombre != nil && strings.TrimSpace(*req.Nombre) == "" {
		return nil, apperr.NewValidation("nombre", "El nombre del tablero no puede estar vacío")
	}

	data, err := s.api.Put(ctx, apiclient.PathID(boardsEndpoint, id), req)
	if err != nil {
		s.logger.Error("Failed to update board", zap.Int("board_id", id), zap.Error(err))
		return nil, err
	}
	board, err := model.DecodeBoard(data)
	if err != nil {
		s.logger.Error("Failed to decode updated board", zap.Int("board_id", id), zap.Error(err))
		return nil, err
	}
	return board, nil
}

// Delete removes the board on the server. The caller drops it from local
// state only after this resolves.
func (s *boardServiceImpl) Delete(ctx context.Context, id int) error {
	if _, err := s.api.Delete(ctx, apiclient.PathID(boardsEndpoint, id)); err != nil {
		s.logger.Error("Failed to delete board", zap.Int("board_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Search filters the full collection client-side, matching the query
// case-insensitively against nombre and descripcion.
func (s *boardServiceImpl) Search(ctx context.Context, query string) ([]model.Board, error) {
	boards, err := s.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to search boards", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	q := strings.ToLower(query)
	filtered := make([]model.Board, 0, len(boards))
	for _, b := range boards {
		if strings.Contains(strings.ToLower(b.Nombre), q) ||
			strings.Contains(strings.ToLower(b.Descripcion), q) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// Stats fetches the board with detail and derives progress numbers from
// its nested columns and tasks. Completion is avance == 100.
func (s *boardServiceImpl) Stats(ctx context.Context, id int) (*dto.BoardStats, error) {
	board, err := s.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get board stats", zap.Int("board_id", id), zap.Error(err))
		return nil, err
	}

	stats := &dto.BoardStats{
		TotalColumns: len(board.Columns),
	}
	for _, col := range board.Columns {
		stats.TotalTasks += len(col.Tasks)
		for _, task := range col.Tasks {
			if task.Completed() {
				stats.CompletedTasks++
			}
		}
	}
	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks
	if stats.TotalTasks > 0 {
		stats.CompletionPercentage = int(float64(stats.CompletedTasks)/float64(stats.TotalTasks)*100 + 0.5)
	}
	return stats, nil
}
