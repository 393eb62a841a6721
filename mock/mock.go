// Package mock provides test doubles for solvent interfaces using function fields.
package mock

import (
	"context"

	"github.com/solventhq/solvent"
)

// Interface compliance checks.
var (
	_ solvent.Streamer = (*Streamer)(nil)
	_ solvent.Backend  = (*Backend)(nil)
	_ solvent.Stream   = (*Stream)(nil)
)

// Streamer is a test double for solvent.Streamer.
// Set StreamAnalyzeFn before calling StreamAnalyze.
type Streamer struct {
	StreamAnalyzeFn func(ctx context.Context, req solvent.AnalyzeRequest) (solvent.Stream, error)
}

// StreamAnalyze delegates to StreamAnalyzeFn.
func (s *Streamer) StreamAnalyze(ctx context.Context, req solvent.AnalyzeRequest) (solvent.Stream, error) {
	return s.StreamAnalyzeFn(ctx, req)
}

// Backend is a test double for solvent.Backend.
// Set the function fields for the methods your test exercises; unset
// methods panic to catch missing setup.
type Backend struct {
	StreamAnalyzeFn func(ctx context.Context, req solvent.AnalyzeRequest) (solvent.Stream, error)
	HealthFn        func(ctx context.Context) (*solvent.HealthResponse, error)
	AnalyzeFn       func(ctx context.Context, req solvent.AnalyzeRequest) (*solvent.AnalyzeResponse, error)
	AnalyzeImageFn  func(ctx context.Context, req solvent.OCRRequest) (*solvent.AnalyzeResponse, error)
	OCRFn           func(ctx context.Context, req solvent.OCRRequest) (*solvent.OCRResponse, error)
	OptimizeFn      func(ctx context.Context, req solvent.OptimizeRequest) (*solvent.AnalyzeResponse, error)
	ExplainSimpleFn func(ctx context.Context, req solvent.ExplainSimpleRequest) (*solvent.ExplainSimpleResponse, error)
	ExplainCodeFn   func(ctx context.Context, req solvent.ExplainCodeRequest) (*solvent.CodeExplanation, error)
	ExecuteFn       func(ctx context.Context, req solvent.ExecuteRequest) (*solvent.ExecuteResponse, error)
}

// StreamAnalyze delegates to StreamAnalyzeFn.
func (b *Backend) StreamAnalyze(ctx context.Context, req solvent.AnalyzeRequest) (solvent.Stream, error) {
	return b.StreamAnalyzeFn(ctx, req)
}

// Health delegates to HealthFn.
func (b *Backend) Health(ctx context.Context) (*solvent.HealthResponse, error) {
	return b.HealthFn(ctx)
}

// Analyze delegates to AnalyzeFn.
func (b *Backend) Analyze(ctx context.Context, req solvent.AnalyzeRequest) (*solvent.AnalyzeResponse, error) {
	return b.AnalyzeFn(ctx, req)
}

// AnalyzeImage delegates to AnalyzeImageFn.
func (b *Backend) AnalyzeImage(ctx context.Context, req solvent.OCRRequest) (*solvent.AnalyzeResponse, error) {
	return b.AnalyzeImageFn(ctx, req)
}

// OCR delegates to OCRFn.
func (b *Backend) OCR(ctx context.Context, req solvent.OCRRequest) (*solvent.OCRResponse, error) {
	return b.OCRFn(ctx, req)
}

// Optimize delegates to OptimizeFn.
func (b *Backend) Optimize(ctx context.Context, req solvent.OptimizeRequest) (*solvent.AnalyzeResponse, error) {
	return b.OptimizeFn(ctx, req)
}

// ExplainSimple delegates to ExplainSimpleFn.
func (b *Backend) ExplainSimple(ctx context.Context, req solvent.ExplainSimpleRequest) (*solvent.ExplainSimpleResponse, error) {
	return b.ExplainSimpleFn(ctx, req)
}

// ExplainCode delegates to ExplainCodeFn.
func (b *Backend) ExplainCode(ctx context.Context, req solvent.ExplainCodeRequest) (*solvent.CodeExplanation, error) {
	return b.ExplainCodeFn(ctx, req)
}

// Execute delegates to ExecuteFn.
func (b *Backend) Execute(ctx context.Context, req solvent.ExecuteRequest) (*solvent.ExecuteResponse, error) {
	return b.ExecuteFn(ctx, req)
}
