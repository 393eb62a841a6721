package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventhq/solvent"
	"github.com/solventhq/solvent/api"
)

func validAnalyzeReq() solvent.AnalyzeRequest {
	return solvent.AnalyzeRequest{
		ProblemText: "find the longest palindromic substring",
		Mode:        solvent.ModeFast,
	}
}

func TestClient_Analyze(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req solvent.AnalyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "find the longest palindromic substring", req.ProblemText)
		assert.Equal(t, solvent.ModeFast, req.Mode)

		json.NewEncoder(w).Encode(solvent.AnalyzeResponse{
			Success: true,
			Data: solvent.SolutionData{
				Code:     "def solve(s): ...",
				Language: "python",
			},
		})
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL))
	resp, err := c.Analyze(context.Background(), validAnalyzeReq())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "def solve(s): ...", resp.Data.Code)
}

func TestClient_ValidationRejectedBeforeTransport(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL))
	_, err := c.Analyze(context.Background(), solvent.AnalyzeRequest{ProblemText: "short"})
	assert.ErrorIs(t, err, solvent.ErrValidation)
	assert.Zero(t, calls.Load())
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(solvent.ErrorResponse{
			Error: solvent.ErrorDetails{
				Code:    "INVALID_REQUEST",
				Message: "problem text too vague",
			},
		})
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL), api.WithRetries(0))
	_, err := c.Analyze(context.Background(), validAnalyzeReq())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "INVALID_REQUEST", apiErr.Code)
	assert.Contains(t, apiErr.Message, "too vague")
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(solvent.ExecuteResponse{Success: true, Output: "42\n"})
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL), api.WithRetries(2))
	resp, err := c.Execute(context.Background(), solvent.ExecuteRequest{Code: "print(42)"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL), api.WithRetries(3))
	_, err := c.Execute(context.Background(), solvent.ExecuteRequest{Code: "print(42)"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Health(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		json.NewEncoder(w).Encode(solvent.HealthResponse{Status: "healthy", Version: "1.0.0"})
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL))
	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
}

func TestClient_TimeoutReportedDistinctly(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL), api.WithRetries(0))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Execute(ctx, solvent.ExecuteRequest{Code: "print(42)"})
	assert.ErrorIs(t, err, solvent.ErrTimeout)
}

func TestClient_ExplainCode(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/explain-code", r.URL.Path)
		json.NewEncoder(w).Encode(solvent.CodeExplanation{
			ThoughtProcess: "two pointers from both ends",
			Lines: []solvent.LineExplanation{
				{LineNumber: 1, Code: "def solve(s):", Explanation: "entry point", IsKeyLine: true},
			},
		})
	}))
	defer srv.Close()

	c := api.New(api.WithBaseURL(srv.URL))
	notes, err := c.ExplainCode(context.Background(), solvent.ExplainCodeRequest{
		ProblemText: "find the longest palindromic substring",
		Code:        "def solve(s): ...",
	})
	require.NoError(t, err)
	assert.Equal(t, "two pointers from both ends", notes.ThoughtProcess)
	require.Len(t, notes.Lines, 1)
	assert.True(t, notes.Lines[0].IsKeyLine)
}
