package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"kanban-board-client/internal/apiclient"
	"kanban-board-client/internal/apperr"
	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/metrics"
	"kanban-board-client/internal/model"
)

const tasksEndpoint = "/tasks"

const (
	taskNameMinLen        = 3
	taskNameMaxLen        = 200
	taskDescriptionMaxLen = 1000
)

// TaskService defines the interface for task operations against the
// remote store.
type TaskService interface {
	GetAll(ctx context.Context) ([]model.Task, error)
	GetByColumn(ctx context.Context, columnID int) ([]model.Task, error)
	GetByID(ctx context.Context, id int) (*model.Task, error)
	Create(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error)
	Update(ctx context.Context, id int, req dto.UpdateTaskRequest) (*model.Task, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]model.Task, error)
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	api     APIClient
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(api APIClient, m *metrics.Metrics, logger *zap.Logger) TaskService {
	return &taskServiceImpl{
		api:     api,
		metrics: m,
		logger:  logger,
	}
}

// GetAll fetches every task across all columns.
func (s *taskServiceImpl) GetAll(ctx context.Context) ([]model.Task, error) {
	data, err := s.api.Get(ctx, tasksEndpoint)
	if err != nil {
		s.logger.Error("Failed to fetch tasks", zap.Error(err))
		return nil, err
	}
	tasks, err := model.DecodeTaskList(data)
	if err != nil {
		s.logger.Error("Failed to decode tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

// GetByColumn fetches the full collection and filters by column id
// client-side, the backend having no nested collection endpoint.
func (s *taskServiceImpl) GetByColumn(ctx context.Context, columnID int) ([]model.Task, error) {
	tasks, err := s.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch tasks for column", zap.Int("column_id", columnID), zap.Error(err))
		return nil, err
	}
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ColumnID == columnID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// GetByID fetches a single task.
func (s *taskServiceImpl) GetByID(ctx context.Context, id int) (*model.Task, error) {
	data, err := s.api.Get(ctx, apiclient.PathID(tasksEndpoint, id))
	if err != nil {
		s.logger.Error("Failed to fetch task", zap.Int("task_id", id), zap.Error(err))
		return nil, err
	}
	task, err := model.DecodeTask(data)
	if err != nil {
		s.logger.Error("Failed to decode task", zap.Int("task_id", id), zap.Error(err))
		return nil, err
	}
	return task, nil
}

// Create validates the payload locally and posts it. A validation failure
// never reaches the network.
func (s *taskServiceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	name := strings.TrimSpace(req.Nombre)
	if name == "" {
		return nil, apperr.NewValidation("nombre", "El nombre de la tarea es requerido")
	}
	if len(name) < taskNameMinLen || len(name) > taskNameMaxLen {
		return nil, apperr.NewValidation("nombre", "El nombre debe tener entre 3 y 200 caracteres")
	}
	if req.ColumnID == 0 {
		return nil, apperr.NewValidation("column_id", "El ID de la columna es requerido")
	}
	if len(req.Descripcion) > taskDescriptionMaxLen {
		return nil, apperr.NewValidation("descripcion", "La descripción no puede superar los 1000 caracteres")
	}
	if req.Avance < 0 || req.Avance > 100 {
		return nil, apperr.NewValidation("avance", "El avance debe estar entre 0 y 100")
	}
	if req.Prioridad != "" && !req.Prioridad.Valid() {
		return nil, apperr.NewValidation("prioridad", "La prioridad debe ser alta, media o baja")
	}
	if req.Estado != "" && !req.Estado.Valid() {
		return nil, apperr.NewValidation("estado", "El estado no es válido")
	}
	if err := validateDateRange(req.FechaAsignacion, req.FechaLimite); err != nil {
		return nil, err
	}

	data, err := s.api.Post(ctx, tasksEndpoint, req)
	if err != nil {
		s.logger.Error("Failed to create task", zap.Int("column_id", req.ColumnID), zap.Error(err))
		return nil, err
	}
	task, err := model.DecodeTask(data)
	if err != nil {
		s.logger.Error("Failed to decode created task", zap.Error(err))
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}
	return task, nil
}

// Update rejects empty payloads, blank names, and out-of-range values
// before issuing the request.
func (s *taskServiceImpl) Update(ctx context.Context, id int, req dto.UpdateTaskRequest) (*model.Task, error) {
	if req.Empty() {
		return nil, apperr.NewValidation("", "Al menos un campo debe ser proporcionado para la actualización")
	}
	if req.Nombre != nil {
		name := strings.TrimSpace(*req.Nombre)
		if name == "" {
			return nil, apperr.NewValidation("nombre", "El nombre no puede estar vacío")
		}
		if len(name) < taskNameMinLen || len(name) > taskNameMaxLen {
			return nil, apperr.NewValidation("nombre", "El nombre debe tener entre 3 y 200 caracteres")
		}
	}
	if req.Descripcion != nil && len(*req.Descripcion) > taskDescriptionMaxLen {
		return nil, apperr.NewValidation("descripcion", "La descripción no puede superar los 1000 caracteres")
	}
	if req.Avance != nil && (*req.Avance < 0 || *req.Avance > 100) {
		return nil, apperr.NewValidation("avance", "El avance debe estar entre 0 y 100")
	}
	if req.Prioridad != nil && !req.Prioridad.Valid() {
		return nil, apperr.NewValidation("prioridad", "La prioridad debe ser alta, media o baja")
	}
	if req.Estado != nil && !req.Estado.Valid() {
		return nil, apperr.NewValidation("estado", "El estado no es válido")
	}
	if req.FechaAsignacion != nil && req.FechaLimite != nil {
		if err := validateDateRange(*req.FechaAsignacion, *req.FechaLimite); err != nil {
			return nil, err
		}
	}

	data, err := s.api.Put(ctx, apiclient.PathID(tasksEndpoint, id), req)
	if err != nil {
		s.logger.Error("Failed to update task", zap.Int("task_id", id), zap.Error(err))
		return nil, err
	}
	task, err := model.DecodeTask(data)
	if err != nil {
		s.logger.Error("Failed to decode updated task", zap.Int("task_id", id), zap.Error(err))
		return nil, err
	}
	return task, nil
}

// Delete removes the task on the server.
func (s *taskServiceImpl) Delete(ctx context.Context, id int) error {
	if _, err := s.api.Delete(ctx, apiclient.PathID(tasksEndpoint, id)); err != nil {
		s.logger.Error("Failed to delete task", zap.Int("task_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Search filters the full collection client-side, matching the query
// case-insensitively against nombre and descripcion.
func (s *taskServiceImpl) Search(ctx context.Context, query string) ([]model.Task, error) {
	tasks, err := s.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to search tasks", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	q := strings.ToLower(query)
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Nombre), q) ||
			strings.Contains(strings.ToLower(t.Descripcion), q) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// validateDateRange enforces that the due date is not earlier than the
// assignment date. Dates arrive as date-only or RFC3339 strings; unparseable
// values are left for the server to reject.
func validateDateRange(asignacion, limite string) error {
	if asignacion == "" || limite == "" {
		return nil
	}
	start, ok := parseDate(asignacion)
	if !ok {
		return nil
	}
	end, ok := parseDate(limite)
	if !ok {
		return nil
	}
	if end.Before(start) {
		return apperr.NewValidation("fecha_limite", "La fecha límite debe ser posterior a la fecha de asignación")
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
