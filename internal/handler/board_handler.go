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
)

// BoardHandler serves the /boards endpoints of the fake remote API.
type BoardHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(db *gorm.DB, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{db: db, logger: logger}
}

// List returns every board with its nested columns and tasks.
func (h *BoardHandler) List(c *gin.Context) {
	var boards []domain.Board
	if err := h.db.Preload("Columns.Tasks").Order("id").Find(&boards).Error; err != nil {
		h.logger.Error("Failed to list boards", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, boards)
}

// Get returns one board with detail.
func (h *BoardHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var board domain.Board
	err := h.db.Preload("Columns.Tasks").First(&board, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Tablero no encontrado")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get board", zap.Int("board_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, board)
}

// Create validates the payload and stores a new board.
func (h *BoardHandler) Create(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	if strings.TrimSpace(req.Nombre) == "" {
		sendValidation(c, map[string][]string{
			"nombre": {"El nombre del tablero es requerido"},
		})
		return
	}

	board := domain.Board{
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: req.Descripcion,
	}
	if err := h.db.Create(&board).Error; err != nil {
		h.logger.Error("Failed to create board", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusCreated, board)
}

// Update applies a partial update and returns the canonical object.
func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateBoardRequest
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
	if req.Nombre != nil && strings.TrimSpace(*req.Nombre) == "" {
		sendValidation(c, map[string][]string{
			"nombre": {"El nombre del tablero no puede estar vacío"},
		})
		return
	}

	var board domain.Board
	err := h.db.First(&board, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Tablero no encontrado")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load board for update", zap.Int("board_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if req.Nombre != nil {
		board.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		board.Descripcion = *req.Descripcion
	}
	if err := h.db.Save(&board).Error; err != nil {
		h.logger.Error("Failed to update board", zap.Int("board_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.JSON(http.StatusOK, board)
}

// Delete removes a board and, via the FK constraint, its columns and tasks.
func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var board domain.Board
	err := h.db.First(&board, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendNotFound(c, "Tablero no encontrado")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load board for delete", zap.Int("board_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	// sqlite does not always enforce FK cascades; delete children explicitly
	err = h.db.Transaction(func(tx *gorm.DB) error {
		var columnIDs []int
		if err := tx.Model(&domain.Column{}).Where("board_id = ?", id).Pluck("id", &columnIDs).Error; err != nil {
			return err
		}
		if len(columnIDs) > 0 {
			if err := tx.Where("column_id IN ?", columnIDs).Delete(&domain.Task{}).Error; err != nil {
				return err
			}
			if err := tx.Where("board_id = ?", id).Delete(&domain.Column{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Board{}, id).Error
	})
	if err != nil {
		h.logger.Error("Failed to delete board", zap.Int("board_id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	c.Status(http.StatusNoContent)
}
