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

// TaskState is a point-in-time snapshot of a TaskStore.
type TaskState struct {
	Items   []model.Task
	Loading bool
	Err     string
}

// TaskStore keeps the local view of one column's tasks. Like ColumnStore
// it is parameterized by its parent and fetches only on demand.
type TaskStore struct {
	columnID int
	svc      service.TaskService
	metrics  *metrics.Metrics
	logger   *zap.Logger

	mu       sync.Mutex
	items    []model.Task
	loading  bool
	err      string
	fetchSeq uint64
}

// NewTaskStore creates a TaskStore scoped to the given column.
func NewTaskStore(columnID int, svc service.TaskService, m *metrics.Metrics, logger *zap.Logger) *TaskStore {
	return &TaskStore{
		columnID: columnID,
		svc:      svc,
		metrics:  m,
		logger:   logger,
	}
}

// ColumnID returns the owning column id this store is scoped to.
func (s *TaskStore) ColumnID() int {
	return s.columnID
}

// State returns a snapshot of the current store state.
func (s *TaskStore) State() TaskState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TaskState{
		Items:   append([]model.Task(nil), s.items...),
		Loading: s.loading,
		Err:     s.err,
	}
}

// Items returns a copy of the current collection.
func (s *TaskStore) Items() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.items...)
}

// Err returns the current error message, empty when none.
func (s *TaskStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether an action is in flight.
func (s *TaskStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *TaskStore) setItems(items []model.Task) {
	s.items = items
	if s.metrics != nil {
		s.metrics.SetStoreItems("tasks", len(items))
	}
}

// Fetch replaces the collection with the column's current tasks. On
// failure the collection is emptied, not left stale.
func (s *TaskStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	tasks, err := s.svc.GetByColumn(ctx, s.columnID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.logger.Debug("Discarding stale task fetch response", zap.Int("column_id", s.columnID))
		return nil
	}
	s.loading = false
	if err != nil {
		s.setItems([]model.Task{})
		s.err = apperr.UserMessage(err, "Error al cargar las tareas")
		return err
	}
	s.setItems(tasks)
	return nil
}

// Create posts the payload and appends the server's canonical object. The
// store's column id is stamped onto the request so a task can never be
// created without its parent.
func (s *TaskStore) Create(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	req.ColumnID = s.columnID

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	task, err := s.svc.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al crear la tarea")
		return nil, err
	}
	s.setItems(append(s.items, *task))
	return task, nil
}

// Update replaces the matching element by id with the server's canonical
// object.
func (s *TaskStore) Update(ctx context.Context, id int, req dto.UpdateTaskRequest) (*model.Task, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	task, err := s.svc.Update(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al actualizar la tarea")
		return nil, err
	}
	for i := range s.items {
		if s.items[i].ID == task.ID {
			s.items[i] = *task
		}
	}
	return task, nil
}

// Delete removes the task from the collection only after the server
// confirms.
func (s *TaskStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	err := s.svc.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al eliminar la tarea")
		return err
	}
	kept := make([]model.Task, 0, len(s.items))
	for _, t := range s.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.setItems(kept)
	return nil
}

// Search replaces the collection with tasks of this column matching the
// query. A blank query is equivalent to Fetch.
func (s *TaskStore) Search(ctx context.Context, query string) error {
	if isBlank(query) {
		return s.Fetch(ctx)
	}

	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	tasks, err := s.svc.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.logger.Debug("Discarding stale task search response", zap.String("query", query))
		return nil
	}
	s.loading = false
	if err != nil {
		s.err = apperr.UserMessage(err, "Error al cargar las tareas")
		return err
	}
	scoped := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ColumnID == s.columnID {
			scoped = append(scoped, t)
		}
	}
	s.setItems(scoped)
	return nil
}

// GetByID returns the task with the given id from the local collection,
// without a round-trip.
func (s *TaskStore) GetByID(id int) (*model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			task := t
			return &task, true
		}
	}
	return nil, false
}

// ClearError resets the error state.
func (s *TaskStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}
