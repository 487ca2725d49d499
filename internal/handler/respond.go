package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// errorResponse is the error body every endpoint returns:
// {message, errors?: {field: [...]}}.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Message: message})
}

func sendValidation(c *gin.Context, fieldErrors map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, errorResponse{
		Message: "Error de validación",
		Errors:  fieldErrors,
	})
}

func sendNotFound(c *gin.Context, message string) {
	sendError(c, http.StatusNotFound, message)
}

// pathID parses the :id path parameter, replying 400 on garbage.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		sendError(c, http.StatusBadRequest, "Solicitud inválida")
		return 0, false
	}
	return id, true
}
