package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier is the transient user notification sink. The API client emits a
// "processing" notice when a mutating request starts, dismisses it when the
// response settles, and then reports success or failure. Front ends decide
// how notices are rendered; the SDK only dispatches them.
type Notifier interface {
	// Processing shows a transient notice under the given id, replacing any
	// notice already shown under the same id.
	Processing(id, message string)
	// Dismiss removes the notice shown under id, if any.
	Dismiss(id string)
	// Success reports a completed mutation.
	Success(message string)
	// Error reports a failed operation.
	Error(message string)
}

// logNotifier renders notices as structured log lines.
type logNotifier struct {
	logger *zap.Logger

	mu      sync.Mutex
	pending map[string]string
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{
		logger:  logger,
		pending: make(map[string]string),
	}
}

func (n *logNotifier) Processing(id, message string) {
	n.mu.Lock()
	n.pending[id] = message
	n.mu.Unlock()
	n.logger.Info("notice", zap.String("kind", "processing"), zap.String("id", id), zap.String("message", message))
}

func (n *logNotifier) Dismiss(id string) {
	n.mu.Lock()
	_, shown := n.pending[id]
	delete(n.pending, id)
	n.mu.Unlock()
	if shown {
		n.logger.Debug("notice dismissed", zap.String("id", id))
	}
}

func (n *logNotifier) Success(message string) {
	n.logger.Info("notice", zap.String("kind", "success"), zap.String("message", message))
}

func (n *logNotifier) Error(message string) {
	n.logger.Warn("notice", zap.String("kind", "error"), zap.String("message", message))
}

// NoOpNotifier is used when notifications are disabled by configuration.
type NoOpNotifier struct{}

func NewNoOpNotifier() Notifier {
	return &NoOpNotifier{}
}

func (NoOpNotifier) Processing(id, message string) {}
func (NoOpNotifier) Dismiss(id string)             {}
func (NoOpNotifier) Success(message string)        {}
func (NoOpNotifier) Error(message string)          {}
