// Package store holds the client's in-memory view of each entity
// collection. A store owns its own collection; stores do not share a cache,
// so parent/child consistency after a mutation requires an explicit
// follow-up fetch (BoardStore.Refresh). Local state is volatile and
// disposable: the remote store is the source of truth, and every mutation
// applies the server's returned canonical object, never a locally
// synthesized one.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"kanban-board-client/internal/apperr"
	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/metrics"
	"kanban-board-client/internal/model"
	"kanban-board-client/internal/service"
)

// BoardState is a point-in-time snapshot of a BoardStore.
type BoardState struct {
	Items    []model.Board
	Loading  bool
	Err      string
	Selected *model.Board
}

// BoardStore keeps the authoritative local view of the board collection.
type BoardStore struct {
	svc     service.BoardService
	metrics *metrics.Metrics
	logger  *zap.Logger

	mu       sync.Mutex
	items    []model.Board
	loading  bool
	err      string
	selected *model.Board

	// Monotonic counters discard responses from superseded fetches, so a
	// slow first fetch cannot overwrite the result of a later one.
	fetchSeq  uint64
	selectSeq uint64
}

// NewBoardStore creates a BoardStore and performs the initial load, the
// way the board view fetches once on mount. A failed initial load is
// recorded in the store's error state, not returned.
func NewBoardStore(ctx context.Context, svc service.BoardService, m *metrics.Metrics, logger *zap.Logger) *BoardStore {
	s := &BoardStore{
		svc:     svc,
		metrics: m,
		logger:  logger,
	}
	_ = s.FetchAll(ctx)
	return s
}

// State returns a snapshot of the current store state.
func (s *BoardStore) State() BoardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BoardState{
		Items:    append([]model.Board(nil), s.items...),
		Loading:  s.loading,
		Err:      s.err,
		Selected: s.selected,
	}
}

// Items returns a copy of the current collection.
func (s *BoardStore) Items() []model.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Board(nil), s.items...)
}

// Err returns the current error message, empty when none.
func (s *BoardStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether an action is in flight.
func (s *BoardStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Selected returns the currently selected board, nil when none.
func (s *BoardStore) Selected() *model.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *BoardStore) setItems(items []model.Board) {
	s.items = items
	if s.metrics != nil {
		s.metrics.SetStoreItems("boards", len(items))
	}
}

// FetchAll replaces the collection wholesale with the server's current
// state. On failure the collection is emptied, not left stale.
func (s *BoardStore) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	boards, err := s.svc.GetAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.logger.Debug("Discarding stale board fetch response")
		return nil
	}
	s.loading = false
	if err != nil {
		s.setItems([]model.Board{})
		s.err = apperr.UserMessage(err, "Error al cargar los tableros")
		return err
	}
	s.setItems(boards)
	return nil
}

// FetchOne loads a single board with detail into the selected slot.
func (s *BoardStore) FetchOne(ctx context.Context, id int) error {
	s.mu.Lock()
	s.selectSeq++
	seq := s.selectSeq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	board, err := s.svc.GetByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.selectSeq {
		s.logger.Debug("Discarding stale board detail response", zap.Int("board_id", id))
		return nil
	}
	s.loading = false
	if err != nil {
		s.selected = nil
		s.err = apperr.UserMessage(err, "Error al cargar el tablero")
		return err
	}
	s.selected = board
	return nil
}

// Create posts the payload and appends the server's canonical object to the
// collection. On failure the collection is left unchanged.
func (s *BoardStore) Create(ctx context.Context, req dto.CreateBoardRequest) (*model.Board, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	board, err := s.svc.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al crear el tablero")
		return nil, err
	}
	s.setItems(append(s.items, *board))
	return board, nil
}

// Update replaces the matching element by id with the server's canonical
// object, refreshing the selected slot when it points at the same board.
func (s *BoardStore) Update(ctx context.Context, id int, req dto.UpdateBoardRequest) (*model.Board, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	board, err := s.svc.Update(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al actualizar el tablero")
		return nil, err
	}
	s.replaceLocked(*board)
	return board, nil
}

// Delete removes the board from the collection only after the server
// confirms the deletion, clearing the selected slot if it matched.
func (s *BoardStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	err := s.svc.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al eliminar el tablero")
		return err
	}
	kept := make([]model.Board, 0, len(s.items))
	for _, b := range s.items {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.setItems(kept)
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	return nil
}

// Search replaces the collection with the filtered result. A blank query
// is equivalent to FetchAll; restoring the unfiltered list afterwards
// requires another FetchAll.
func (s *BoardStore) Search(ctx context.Context, query string) error {
	if isBlank(query) {
		return s.FetchAll(ctx)
	}

	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	boards, err := s.svc.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.logger.Debug("Discarding stale board search response", zap.String("query", query))
		return nil
	}
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al buscar tableros")
		return err
	}
	s.setItems(boards)
	return nil
}

// Refresh re-fetches one board with detail and swaps it into both the
// collection and the selected slot. Pages call this after a child mutation
// so nested columns and tasks do not go stale; the stores do not see each
// other's writes.
func (s *BoardStore) Refresh(ctx context.Context, id int) error {
	board, err := s.svc.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to refresh board", zap.Int("board_id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(*board)
	return nil
}

// ClearError resets the error state.
func (s *BoardStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// ClearSelected resets the selected slot.
func (s *BoardStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// replaceLocked swaps the board with a matching id in the collection and
// the selected slot. Caller holds the mutex.
func (s *BoardStore) replaceLocked(board model.Board) {
	for i := range s.items {
		if s.items[i].ID == board.ID {
			s.items[i] = board
		}
	}
	if s.selected != nil && s.selected.ID == board.ID {
		b := board
		s.selected = &b
	}
}
