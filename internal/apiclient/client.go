package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-client/internal/apperr"
	"kanban-board-client/internal/metrics"
	"kanban-board-client/internal/notify"
)

// loadingNoticeID keys the transient "processing" notice so that a new
// mutation replaces the previous notice instead of stacking.
const loadingNoticeID = "api-loading"

// Client is the single chokepoint for all calls to the remote Kanban API.
// It owns the base URL, the per-request timeout, and JSON content
// negotiation, classifies failures, and dispatches user-facing notices for
// mutating requests. Every failure is returned to the caller after the
// notice is emitted; nothing is swallowed here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   notify.Notifier
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration, notifier notify.Notifier, logger *zap.Logger, m *metrics.Metrics) *Client {
	if notifier == nil {
		notifier = notify.NewNoOpNotifier()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		notifier: notifier,
		logger:   logger,
		metrics:  m,
	}
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body and returns the raw response body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body and returns the raw response body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Patch issues a PATCH request with a JSON body and returns the raw response body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

// Delete issues a DELETE request and returns the raw response body.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// errorBody is the error shape the remote API returns on non-2xx responses.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

var successMessages = map[string]string{
	http.MethodPost:   "Creado exitosamente",
	http.MethodPut:    "Actualizado exitosamente",
	http.MethodPatch:  "Actualizado exitosamente",
	http.MethodDelete: "Eliminado exitosamente",
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	url := c.baseURL + path
	requestID := uuid.New().String()
	mutating := method != http.MethodGet

	if mutating {
		c.notifier.Processing(loadingNoticeID, "Procesando...")
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			c.notifier.Dismiss(loadingNoticeID)
			c.notifier.Error("Error de red")
			c.logger.Error("Failed to marshal request body",
				zap.Error(err),
				zap.String("method", method),
				zap.String("path", path),
				zap.String("request_id", requestID),
			)
			return nil, apperr.RequestFailed(err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.notifier.Dismiss(loadingNoticeID)
		c.notifier.Error("Error de red")
		c.logger.Error("Failed to create request",
			zap.Error(err),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
		)
		return nil, apperr.RequestFailed(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordAPICall(path, method, statusCode, duration, err)
	}

	c.notifier.Dismiss(loadingNoticeID)

	if err != nil {
		c.notifier.Error("No se pudo conectar con el servidor")
		c.logger.Error("Request got no response",
			zap.Error(err),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Duration("duration", duration),
		)
		return nil, apperr.NoConnection(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notifier.Error("No se pudo conectar con el servidor")
		c.logger.Error("Failed to read response body",
			zap.Error(err),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
		)
		return nil, apperr.NoConnection(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if mutating {
			if msg, ok := successMessages[method]; ok {
				c.notifier.Success(msg)
			}
		}
		c.logger.Debug("Request completed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID),
			zap.Duration("duration", duration),
		)
		return data, nil
	}

	apiErr := c.classifyError(resp.StatusCode, data)
	c.logger.Warn("Request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.String("message", apiErr.Message),
		zap.Duration("duration", duration),
	)
	return nil, apiErr
}

// classifyError maps a non-2xx response to an APIError and emits the
// user-facing notice for that status.
func (c *Client) classifyError(status int, data []byte) *apperr.APIError {
	var body errorBody
	_ = json.Unmarshal(data, &body)

	apiErr := &apperr.APIError{
		Code:        apperr.CodeForStatus(status),
		StatusCode:  status,
		FieldErrors: body.Errors,
	}

	switch status {
	case http.StatusBadRequest:
		apiErr.Message = messageOr(body.Message, "Solicitud inválida")
		c.notifier.Error(apiErr.Message)
	case http.StatusUnauthorized:
		apiErr.Message = "No autorizado"
		c.notifier.Error(apiErr.Message)
	case http.StatusForbidden:
		apiErr.Message = "Acceso prohibido"
		c.notifier.Error(apiErr.Message)
	case http.StatusNotFound:
		apiErr.Message = "Recurso no encontrado"
		c.notifier.Error(apiErr.Message)
	case http.StatusUnprocessableEntity:
		apiErr.Message = messageOr(body.Message, "Error de validación")
		if len(body.Errors) > 0 {
			// One notice per field message
			for _, msgs := range body.Errors {
				for _, msg := range msgs {
					c.notifier.Error(msg)
				}
			}
		} else {
			c.notifier.Error(apiErr.Message)
		}
	case http.StatusInternalServerError:
		apiErr.Message = "Error interno del servidor"
		c.notifier.Error(apiErr.Message)
	default:
		apiErr.Message = messageOr(body.Message, "Error desconocido")
		c.notifier.Error(apiErr.Message)
	}

	return apiErr
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

// PathID builds a single-resource path under a collection endpoint.
func PathID(endpoint string, id int) string {
	return fmt.Sprintf("%s/%d", endpoint, id)
}
