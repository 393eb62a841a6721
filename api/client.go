package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/solventhq/solvent"
)

// Interface compliance check.
var _ solvent.Backend = (*Client)(nil)

// Client implements [solvent.Backend] over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int

	// Per-endpoint pacing mirroring the server limits.
	analyzeLimit *rate.Limiter
	ocrLimit     *rate.Limiter
	executeLimit *rate.Limiter
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetries sets how many times a non-streaming request is retried
// after a transient failure. Zero disables retries.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// New creates a new [Client] with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:      defaultBaseURL,
		httpClient:   http.DefaultClient,
		retries:      defaultRetries,
		analyzeLimit: perMinute(analyzePerMinute),
		ocrLimit:     perMinute(ocrPerMinute),
		executeLimit: perMinute(executePerMinute),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func perMinute(n int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
}

// Health reports backend liveness.
func (c *Client) Health(ctx context.Context) (*solvent.HealthResponse, error) {
	var out solvent.HealthResponse
	if err := c.getJSON(ctx, healthPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze solves a problem in a single structured exchange.
func (c *Client) Analyze(ctx context.Context, req solvent.AnalyzeRequest) (*solvent.AnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out solvent.AnalyzeResponse
	if err := c.postJSON(ctx, analyzePath, c.analyzeLimit, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeImage solves a problem captured in a screenshot, combining
// extraction and analysis in one exchange.
func (c *Client) AnalyzeImage(ctx context.Context, req solvent.OCRRequest) (*solvent.AnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out solvent.AnalyzeResponse
	if err := c.postJSON(ctx, analyzeImagePath, c.analyzeLimit, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OCR extracts problem text from a screenshot.
func (c *Client) OCR(ctx context.Context, req solvent.OCRRequest) (*solvent.OCRResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out solvent.OCRResponse
	if err := c.postJSON(ctx, ocrPath, c.ocrLimit, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Optimize asks for an improved version of an existing solution.
func (c *Client) Optimize(ctx context.Context, req solvent.OptimizeRequest) (*solvent.AnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out solvent.AnalyzeResponse
	if err := c.postJSON(ctx, optimizePath, c.analyzeLimit, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExplainSimple asks for a beginner-friendly explanation of a solution.
func (c *Client) ExplainSimple(ctx context.Context, req solvent.ExplainSimpleRequest) (*solvent.ExplainSimpleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out solvent.ExplainSimpleResponse
	if err := c.postJSON(ctx, explainSimplePath, c.analyzeLimit, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExplainCode asks for the thought process behind a solution and a
// line-by-line commentary.
func (c *Client) ExplainCode(ctx context.Context, req solvent.ExplainCodeRequest) (*solvent.CodeExplanation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out solvent.CodeExplanation
	if err := c.postJSON(ctx, explainCodePath, c.analyzeLimit, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Execute runs solution code in the backend sandbox.
func (c *Client) Execute(ctx context.Context, req solvent.ExecuteRequest) (*solvent.ExecuteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out solvent.ExecuteResponse
	if err := c.postJSON(ctx, executePath, c.executeLimit, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StreamAnalyze opens the streaming analyze endpoint and returns a
// [solvent.Stream] over the response body. The stream stays open until
// a terminal record arrives, the context is cancelled, or Close is
// called; no default timeout is applied here.
func (c *Client) StreamAnalyze(ctx context.Context, req solvent.AnalyzeRequest) (solvent.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := c.analyzeLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzeStreamPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, parseHTTPError(resp)
	}

	return newStream(ctx, resp.Body), nil
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	ctx, cancel := c.withDefaultTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return c.do(req, out)
}

// postJSON issues a POST with retry on transient failures. The limiter
// is consulted before every attempt so retries stay inside the server's
// rate budget.
func (c *Client) postJSON(ctx context.Context, path string, limit *rate.Limiter, in, out any) error {
	ctx, cancel := c.withDefaultTimeout(ctx)
	defer cancel()

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return wrapContextErr(ctx.Err())
			}
		}
		if err := limit.Wait(ctx); err != nil {
			return wrapContextErr(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("api: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		lastErr = c.do(req, out)
		if lastErr == nil {
			return nil
		}
		var apiErr *Error
		if !errors.As(lastErr, &apiErr) || !retryable(apiErr.Status) {
			return lastErr
		}
	}
	return lastErr
}

// do executes the request and decodes a 2xx body into out. Non-2xx
// responses are parsed into an [*Error].
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapContextErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseHTTPError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}

// withDefaultTimeout bounds non-streaming requests that arrive without
// a deadline of their own.
func (c *Client) withDefaultTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, defaultTimeout)
}

// wrapContextErr maps a deadline expiry to [solvent.ErrTimeout] so
// callers can report it distinctly from transport faults.
func wrapContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("api: %w", solvent.ErrTimeout)
	}
	return fmt.Errorf("api: %w", err)
}

// parseHTTPError reads a failed response into an [*Error], using the
// backend's error envelope when the body carries one.
func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", err)}
	}
	var envelope solvent.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return &Error{Status: resp.StatusCode, Message: string(body)}
	}
	return &Error{Status: resp.StatusCode, Code: envelope.Error.Code, Message: envelope.Error.Message}
}
