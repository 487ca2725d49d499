package metrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Numeric resource-id pattern for endpoint normalization
	idPattern = regexp.MustCompile(`/\d+(/|$)`)
)

// RecordAPICall records outbound API call metrics
func (m *Metrics) RecordAPICall(endpoint, method string, statusCode int, duration time.Duration, err error) {
	m.safeExecute("RecordAPICall", func() {
		endpoint = NormalizeEndpoint(endpoint)
		status := strconv.Itoa(statusCode)

		m.APIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
		m.APIRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())

		// Record errors for both network errors and HTTP error status codes
		if err != nil || statusCode >= 400 {
			errorType := getErrorType(statusCode, err)
			m.APIErrors.WithLabelValues(endpoint, errorType).Inc()
		}
	})
}

// NormalizeEndpoint converts actual resource ids to templates.
// Example: /boards/42 -> /boards/{id}
func NormalizeEndpoint(endpoint string) string {
	return idPattern.ReplaceAllString(endpoint, "/{id}$1")
}

// getErrorType categorizes error types based on status code and error
func getErrorType(statusCode int, err error) string {
	switch {
	case statusCode == 400:
		return "bad_request"
	case statusCode == 401:
		return "unauthorized"
	case statusCode == 403:
		return "forbidden"
	case statusCode == 404:
		return "not_found"
	case statusCode == 422:
		return "validation"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	case statusCode == 500:
		return "internal_server_error"
	case statusCode >= 500 && statusCode < 600:
		return "server_error"
	}

	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "connection refused") {
			return "connection_refused"
		}
		if strings.Contains(errMsg, "no such host") {
			return "dns_error"
		}
		if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded") {
			return "timeout"
		}
		if strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset") {
			return "connection_reset"
		}
		return "network_error"
	}

	return "unknown"
}
