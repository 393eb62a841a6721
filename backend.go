package solvent

import "context"

// Streamer is the streaming slice of the backend needed by the
// session Controller.
type Streamer interface {
	StreamAnalyze(ctx context.Context, req AnalyzeRequest) (Stream, error)
}

// Backend is the remote solver API as seen by the client. Non-streaming
// calls are plain request/response exchanges; StreamAnalyze returns a
// Stream over the chunked response body. Implementations propagate
// HTTP-style status-coded failures as errors.
type Backend interface {
	Streamer

	Health(ctx context.Context) (*HealthResponse, error)
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
	AnalyzeImage(ctx context.Context, req OCRRequest) (*AnalyzeResponse, error)
	OCR(ctx context.Context, req OCRRequest) (*OCRResponse, error)
	Optimize(ctx context.Context, req OptimizeRequest) (*AnalyzeResponse, error)
	ExplainSimple(ctx context.Context, req ExplainSimpleRequest) (*ExplainSimpleResponse, error)
	ExplainCode(ctx context.Context, req ExplainCodeRequest) (*CodeExplanation, error)
	Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResponse, error)
}
