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

// ColumnHandler serves the /columns endpoints of the fake remote API.
type ColumnHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewColumnHandler creates a new ColumnHandler
func NewColumnHandler(db *gorm.DB, logger *zap.Logger) *ColumnHandler {
	return &ColumnHandler{db: db, logger: logger}
}

// List returns every column across all boards. Clients filter by board_id
// themselves; there is no nested collection endpoint.
func (h *ColumnHandler) List(c *gin.Context) {
	var columns []domain.Column
	if err := h.db.Preload("Tasks").Order("board_id, posicion, id").Find(&columns).Error; err != nil {
		h.logger.Error("Failed to list columns", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, columns)
}

// Get returns one column with its tasks.
func (h *ColumnHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var column domain.Column
	err := h.db.Preload("Tasks").First(&column, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Columna no encontrada")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get column", zap.Int("column_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, column)
}

// Create validates the payload, checks the parent board exists, and stores
// a new column.
func (h *ColumnHandler) Create(c *gin.Context) {
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	fieldErrors := map[string][]string{}
	if strings.TrimSpace(req.Titulo) == "" {
		fieldErrors["titulo"] = append(fieldErrors["titulo"], "El título de la columna es requerido")
	}
	if req.BoardID == 0 {
		fieldErrors["board_id"] = append(fieldErrors["board_id"], "El ID del tablero es requerido")
	}
	if req.Posicion < 0 {
		fieldErrors["posicion"] = append(fieldErrors["posicion"], "La posición no puede ser negativa")
	}
	if len(fieldErrors) > 0 {
		sendValidation(c, fieldErrors)
		return
	}

	var board domain.Board
	err := h.db.First(&board, req.BoardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendValidation(c, map[string][]string{
			"board_id": {"El tablero no existe"},
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to verify board", zap.Int("board_id", req.BoardID), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	color := req.Color
	if color == "" {
		color = model.DefaultColumnColor
	}
	column := domain.Column{
		BoardID:  req.BoardID,
		Titulo:   strings.TrimSpace(req.Titulo),
		Color:    color,
		Posicion: req.Posicion,
	}
	if err := h.db.Create(&column).Error; err != nil {
		h.logger.Error("Failed to create column", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusCreated, column)
}

// Update applies a partial update and returns the canonical object.
func (h *ColumnHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	if req.Empty() {
		sendValidation(c, map[string][]string{
			"titulo": {"Al menos un campo debe ser proporcionado para la actualización"},
		})
		return
	}
	if req.Titulo != nil && strings.TrimSpace(*req.Titulo) == "" {
		sendValidation(c, map[string][]string{
			"titulo": {"El título no puede estar vacío"},
		})
		return
	}
	if req.Posicion != nil && *req.Posicion < 0 {
		sendValidation(c, map[string][]string{
			"posicion": {"La posición no puede ser negativa"},
		})
		return
	}

	var column domain.Column
	err := h.db.First(&column, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Columna no encontrada")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load column for update", zap.Int("column_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if req.Titulo != nil {
		column.Titulo = strings.TrimSpace(*req.Titulo)
	}
	if req.Color != nil {
		column.Color = *req.Color
	}
	if req.Posicion != nil {
		column.Posicion = *req.Posicion
	}
	if err := h.db.Save(&column).Error; err != nil {
		h.logger.Error("Failed to update column", zap.Int("column_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, column)
}

// Delete removes a column and its tasks.
func (h *ColumnHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var column domain.Column
	err := h.db.First(&column, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Columna no encontrada")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load column for delete", zap.Int("column_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Column{}, id).Error
	})
	if err != nil {
		h.logger.Error("Failed to delete column", zap.Int("column_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.Status(http.StatusNoContent)
}
