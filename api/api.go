// Package api implements [solvent.Backend] for the solver HTTP API.
//
// Non-streaming endpoints are plain JSON request/response exchanges
// with retry on transient failures. The streaming analyze endpoint
// returns a [solvent.Stream] that parses the chunked response body one
// read at a time.
package api

import (
	"fmt"
	"time"
)

const (
	defaultBaseURL = "http://localhost:3001"
	apiPrefix      = "/api/v1"

	healthPath        = apiPrefix + "/health"
	analyzePath       = apiPrefix + "/analyze"
	analyzeStreamPath = apiPrefix + "/analyze-stream"
	analyzeImagePath  = apiPrefix + "/analyze-image"
	ocrPath           = apiPrefix + "/ocr"
	optimizePath      = apiPrefix + "/optimize"
	explainSimplePath = apiPrefix + "/explain-simple"
	explainCodePath   = apiPrefix + "/explain-code"
	executePath       = apiPrefix + "/execute"

	defaultTimeout = 60 * time.Second
	defaultRetries = 2

	retryBaseDelay = 500 * time.Millisecond
)

// Server-side rate limits, mirrored client-side so requests queue
// locally instead of tripping 429 responses.
const (
	analyzePerMinute = 10
	ocrPerMinute     = 5
	executePerMinute = 20
)

// Error is a status-coded failure returned by the backend.
type Error struct {
	Status  int    // HTTP status code
	Code    string // machine-readable error code, may be empty
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: HTTP %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
}

// retryable reports whether a status code is worth retrying.
func retryable(status int) bool {
	switch status {
	case 429, 502, 503, 504:
		return true
	}
	return false
}
