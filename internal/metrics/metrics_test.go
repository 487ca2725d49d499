package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

// TestMetricsInitialization tests that all metrics are properly initialized
func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	if m.APIRequestsTotal == nil {
		t.Error("APIRequestsTotal should not be nil")
	}
	if m.APIRequestDuration == nil {
		t.Error("APIRequestDuration should not be nil")
	}
	if m.APIErrors == nil {
		t.Error("APIErrors should not be nil")
	}
	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal should not be nil")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration should not be nil")
	}
	if m.BoardCreatedTotal == nil {
		t.Error("BoardCreatedTotal should not be nil")
	}
	if m.ColumnCreatedTotal == nil {
		t.Error("ColumnCreatedTotal should not be nil")
	}
	if m.TaskCreatedTotal == nil {
		t.Error("TaskCreatedTotal should not be nil")
	}
	if m.StoreItems == nil {
		t.Error("StoreItems should not be nil")
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"/boards", "/boards"},
		{"/boards/42", "/boards/{id}"},
		{"/columns/7", "/columns/{id}"},
		{"/tasks/123", "/tasks/{id}"},
		{"/boards/42/columns", "/boards/{id}/columns"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			if got := NormalizeEndpoint(tt.endpoint); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   string
	}{
		{"bad request", 400, nil, "bad_request"},
		{"unauthorized", 401, nil, "unauthorized"},
		{"forbidden", 403, nil, "forbidden"},
		{"not found", 404, nil, "not_found"},
		{"validation", 422, nil, "validation"},
		{"other client error", 418, nil, "client_error"},
		{"internal server error", 500, nil, "internal_server_error"},
		{"bad gateway", 502, nil, "server_error"},
		{"connection refused", 0, errConn("dial tcp 127.0.0.1:8000: connect: connection refused"), "connection_refused"},
		{"dns failure", 0, errConn("lookup api.invalid: no such host"), "dns_error"},
		{"timeout", 0, errConn("context deadline exceeded"), "timeout"},
		{"reset", 0, errConn("read: connection reset by peer"), "connection_reset"},
		{"other network error", 0, errConn("broken pipe"), "network_error"},
		{"no error at all", 0, nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getErrorType(tt.status, tt.err); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

type errConn string

func (e errConn) Error() string { return string(e) }

func TestRecordAPICall(t *testing.T) {
	m := getTestMetrics()

	m.RecordAPICall("/boards/42", "GET", 200, 25*time.Millisecond, nil)

	value := getCounterValue(t, m.APIRequestsTotal.WithLabelValues("/boards/{id}", "GET", "200"))
	if value != 1 {
		t.Errorf("Expected 1 request recorded, got %f", value)
	}

	// An error status must also land in the error counter
	m.RecordAPICall("/boards", "POST", 422, 10*time.Millisecond, nil)
	errValue := getCounterValue(t, m.APIErrors.WithLabelValues("/boards", "validation"))
	if errValue != 1 {
		t.Errorf("Expected 1 error recorded, got %f", errValue)
	}
}

func TestIncrementBoardCreated(t *testing.T) {
	m := getTestMetrics()

	initial := getCounterValue(t, m.BoardCreatedTotal)
	m.IncrementBoardCreated()

	if got := getCounterValue(t, m.BoardCreatedTotal); got <= initial {
		t.Errorf("Expected counter to increment, got %f -> %f", initial, got)
	}
}

func TestIncrementColumnAndTaskCreated(t *testing.T) {
	m := getTestMetrics()

	m.IncrementColumnCreated()
	m.IncrementColumnCreated()
	m.IncrementTaskCreated()

	if got := getCounterValue(t, m.ColumnCreatedTotal); got != 2 {
		t.Errorf("Expected ColumnCreatedTotal 2, got %f", got)
	}
	if got := getCounterValue(t, m.TaskCreatedTotal); got != 1 {
		t.Errorf("Expected TaskCreatedTotal 1, got %f", got)
	}
}

func TestSetStoreItems(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name   string
		entity string
		count  int
	}{
		{"empty store", "boards", 0},
		{"some boards", "boards", 3},
		{"tasks", "tasks", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetStoreItems(tt.entity, tt.count)
			value := getGaugeValue(t, m.StoreItems.WithLabelValues(tt.entity))
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{204, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{500, "5xx"},
		{100, "unknown"},
	}

	for _, tt := range tests {
		if got := categorizeStatus(tt.code); got != tt.want {
			t.Errorf("categorizeStatus(%d): expected %s, got %s", tt.code, tt.want, got)
		}
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	if !ShouldSkipEndpoint("/metrics") {
		t.Error("Expected /metrics to be skipped")
	}
	if !ShouldSkipEndpoint("/health") {
		t.Error("Expected /health to be skipped")
	}
	if ShouldSkipEndpoint("/api/boards") {
		t.Error("Expected /api/boards not to be skipped")
	}
}

// TestPanicRecovery verifies that metric operations on an uninitialized
// Metrics value do not crash the caller.
func TestPanicRecovery(t *testing.T) {
	m := &Metrics{}

	m.IncrementBoardCreated()
	m.IncrementColumnCreated()
	m.IncrementTaskCreated()
	m.SetStoreItems("boards", 1)
	m.RecordAPICall("/boards", "GET", 200, time.Millisecond, nil)
	m.RecordHTTPRequest("GET", "/api/boards", 200, time.Millisecond)
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
