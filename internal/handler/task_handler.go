package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-client/internal/domain"
	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/model"
)

// TaskHandler serves the /tasks endpoints of the fake remote API.
type TaskHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(db *gorm.DB, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{db: db, logger: logger}
}

// List returns every task across all columns. Clients filter by column_id
// themselves.
func (h *TaskHandler) List(c *gin.Context) {
	var tasks []domain.Task
	if err := h.db.Order("column_id, id").Find(&tasks).Error; err != nil {
		h.logger.Error("Failed to list tasks", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Get returns one task.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var task domain.Task
	err := h.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Tarea no encontrada")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get task", zap.Int("task_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create validates the payload, checks the parent column exists, and
// stores a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	fieldErrors := validateTaskCreate(req)
	if len(fieldErrors) > 0 {
		sendValidation(c, fieldErrors)
		return
	}

	var column domain.Column
	err := h.db.First(&column, req.ColumnID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendValidation(c, map[string][]string{
			"column_id": {"La columna no existe"},
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to verify column", zap.Int("column_id", req.ColumnID), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	prioridad := string(req.Prioridad)
	if prioridad == "" {
		prioridad = string(model.PriorityMedium)
	}
	estado := string(req.Estado)
	if estado == "" {
		estado = string(model.StatusPending)
	}
	task := domain.Task{
		ColumnID:        req.ColumnID,
		Nombre:          strings.TrimSpace(req.Nombre),
		Descripcion:     req.Descripcion,
		FechaAsignacion: req.FechaAsignacion,
		FechaLimite:     req.FechaLimite,
		Asignador:       req.Asignador,
		Responsable:     req.Responsable,
		Avance:          req.Avance,
		Prioridad:       prioridad,
		Estado:          estado,
	}
	if err := h.db.Create(&task).Error; err != nil {
		h.logger.Error("Failed to create task", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update applies a partial update and returns the canonical object.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	if req.Empty() {
		sendValidation(c, map[string][]string{
			"nombre": {"Al menos un campo debe ser proporcionado para la actualización"},
		})
		return
	}
	fieldErrors := validateTaskUpdate(req)
	if len(fieldErrors) > 0 {
		sendValidation(c, fieldErrors)
		return
	}

	var task domain.Task
	err := h.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Tarea no encontrada")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load task for update", zap.Int("task_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if req.ColumnID != nil {
		var column domain.Column
		err := h.db.First(&column, *req.ColumnID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendValidation(c, map[string][]string{
				"column_id": {"La columna no existe"},
			})
			return
		}
		if err != nil {
			h.logger.Error("Failed to verify column", zap.Int("column_id", *req.ColumnID), zap.Error(err))
			sendError(c, http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		task.ColumnID = *req.ColumnID
	}
	if req.Nombre != nil {
		task.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		task.Descripcion = *req.Descripcion
	}
	if req.FechaAsignacion != nil {
		task.FechaAsignacion = *req.FechaAsignacion
	}
	if req.FechaLimite != nil {
		task.FechaLimite = *req.FechaLimite
	}
	if req.Asignador != nil {
		task.Asignador = *req.Asignador
	}
	if req.Responsable != nil {
		task.Responsable = *req.Responsable
	}
	if req.Avance != nil {
		task.Avance = *req.Avance
	}
	if req.Prioridad != nil {
		task.Prioridad = string(*req.Prioridad)
	}
	if req.Estado != nil {
		task.Estado = string(*req.Estado)
	}
	if err := h.db.Save(&task).Error; err != nil {
		h.logger.Error("Failed to update task", zap.Int("task_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var task domain.Task
	err := h.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Tarea no encontrada")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load task for delete", zap.Int("task_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if err := h.db.Delete(&domain.Task{}, id).Error; err != nil {
		h.logger.Error("Failed to delete task", zap.Int("task_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.Status(http.StatusNoContent)
}

func validateTaskCreate(req dto.CreateTaskRequest) map[string][]string {
	fieldErrors := map[string][]string{}
	name := strings.TrimSpace(req.Nombre)
	if name == "" {
		fieldErrors["nombre"] = append(fieldErrors["nombre"], "El nombre de la tarea es requerido")
	} else if len(name) < 3 || len(name) > 200 {
		fieldErrors["nombre"] = append(fieldErrors["nombre"], "El nombre debe tener entre 3 y 200 caracteres")
	}
	if req.ColumnID == 0 {
		fieldErrors["column_id"] = append(fieldErrors["column_id"], "El ID de la columna es requerido")
	}
	if len(req.Descripcion) > 1000 {
		fieldErrors["descripcion"] = append(fieldErrors["descripcion"], "La descripción no puede superar los 1000 caracteres")
	}
	if req.Avance < 0 || req.Avance > 100 {
		fieldErrors["avance"] = append(fieldErrors["avance"], "El avance debe estar entre 0 y 100")
	}
	if req.Prioridad != "" && !req.Prioridad.Valid() {
		fieldErrors["prioridad"] = append(fieldErrors["prioridad"], "La prioridad debe ser alta, media o baja")
	}
	if req.Estado != "" && !req.Estado.Valid() {
		fieldErrors["estado"] = append(fieldErrors["estado"], "El estado no es válido")
	}
	return fieldErrors
}

func validateTaskUpdate(req dto.UpdateTaskRequest) map[string][]string {
	fieldErrors := map[string][]string{}
	if req.Nombre != nil {
		name := strings.TrimSpace(*req.Nombre)
		if name == "" {
			fieldErrors["nombre"] = append(fieldErrors["nombre"], "El nombre no puede estar vacío")
		} else if len(name) < 3 || len(name) > 200 {
			fieldErrors["nombre"] = append(fieldErrors["nombre"], "El nombre debe tener entre 3 y 200 caracteres")
		}
	}
	if req.Descripcion != nil && len(*req.Descripcion) > 1000 {
		fieldErrors["descripcion"] = append(fieldErrors["descripcion"], "La descripción no puede superar los 1000 caracteres")
	}
	if req.Avance != nil && (*req.Avance < 0 || *req.Avance > 100) {
		fieldErrors["avance"] = append(fieldErrors["avance"], "El avance debe estar entre 0 y 100")
	}
	if req.Prioridad != nil && !req.Prioridad.Valid() {
		fieldErrors["prioridad"] = append(fieldErrors["prioridad"], "La prioridad debe ser alta, media o baja")
	}
	if req.Estado != nil && !req.Estado.Valid() {
		fieldErrors["estado"] = append(fieldErrors["estado"], "El estado no es válido")
	}
	return fieldErrors
}
