package store

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"kanban-board-client/internal/apperr"
	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/metrics"
	"kanban-board-client/internal/model"
	"kanban-board-client/internal/service"
)

// ColumnState is a point-in-time snapshot of a ColumnStore.
type ColumnState struct {
	Items   []model.Column
	Loading bool
	Err     string
}

// ColumnStore keeps the local view of one board's columns. It is
// parameterized by the owning board and fetches only on demand: the
// collection is meaningless before a parent context is known.
type ColumnStore struct {
	boardID int
	svc     service.ColumnService
	metrics *metrics.Metrics
	logger  *zap.Logger

	mu       sync.Mutex
	items    []model.Column
	loading  bool
	err      string
	fetchSeq uint64
}

// NewColumnStore creates a ColumnStore scoped to the given board.
func NewColumnStore(boardID int, svc service.ColumnService, m *metrics.Metrics, logger *zap.Logger) *ColumnStore {
	return &ColumnStore{
		boardID: boardID,
		svc:     svc,
		metrics: m,
		logger:  logger,
	}
}

// BoardID returns the owning board id this store is scoped to.
func (s *ColumnStore) BoardID() int {
	return s.boardID
}

// State returns a snapshot of the current store state.
func (s *ColumnStore) State() ColumnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ColumnState{
		Items:   append([]model.Column(nil), s.items...),
		Loading: s.loading,
		Err:     s.err,
	}
}

// Items returns a copy of the current collection.
func (s *ColumnStore) Items() []model.Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Column(nil), s.items...)
}

// Err returns the current error message, empty when none.
func (s *ColumnStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether an action is in flight.
func (s *ColumnStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ColumnStore) setItems(items []model.Column) {
	s.items = items
	if s.metrics != nil {
		s.metrics.SetStoreItems("columns", len(items))
	}
}

// Fetch replaces the collection with the board's current columns. On
// failure the collection is emptied, not left stale.
func (s *ColumnStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	columns, err := s.svc.GetByBoard(ctx, s.boardID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.logger.Debug("Discarding stale column fetch response", zap.Int("board_id", s.boardID))
		return nil
	}
	s.loading = false
	if err != nil {
		s.setItems([]model.Column{})
		s.err = apperr.UserMessage(err, "Error al cargar las columnas")
		return err
	}
	s.setItems(columns)
	return nil
}

// Create posts the payload and appends the server's canonical object. The
// store's board id is stamped onto the request so a column can never be
// created without its parent.
func (s *ColumnStore) Create(ctx context.Context, req dto.CreateColumnRequest) (*model.Column, error) {
	req.BoardID = s.boardID

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	column, err := s.svc.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al crear la columna")
		return nil, err
	}
	s.setItems(append(s.items, *column))
	return column, nil
}

// Update replaces the matching element by id with the server's canonical
// object.
func (s *ColumnStore) Update(ctx context.Context, id int, req dto.UpdateColumnRequest) (*model.Column, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	column, err := s.svc.Update(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al actualizar la columna")
		return nil, err
	}
	for i := range s.items {
		if s.items[i].ID == column.ID {
			s.items[i] = *column
		}
	}
	return column, nil
}

// Delete removes the column from the collection only after the server
// confirms. Cleanup of the column's tasks is the server's responsibility.
func (s *ColumnStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	err := s.svc.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al eliminar la columna")
		return err
	}
	kept := make([]model.Column, 0, len(s.items))
	for _, c := range s.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.setItems(kept)
	return nil
}

// Search replaces the collection with columns of this board whose title
// matches the query. A blank query is equivalent to Fetch.
func (s *ColumnStore) Search(ctx context.Context, query string) error {
	if isBlank(query) {
		return s.Fetch(ctx)
	}

	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	columns, err := s.svc.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.logger.Debug("Discarding stale column search response", zap.String("query", query))
		return nil
	}
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al cargar las columnas")
		return err
	}
	scoped := make([]model.Column, 0, len(columns))
	for _, c := range columns {
		if c.BoardID == s.boardID {
			scoped = append(scoped, c)
		}
	}
	s.setItems(scoped)
	return nil
}

// ClearError resets the error state.
func (s *ColumnStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
