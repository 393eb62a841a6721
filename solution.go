package solvent

import "time"

// LineExplanation annotates one line of generated code.
type LineExplanation struct {
	LineNumber     int    `json:"line_number"`
	Code           string `json:"code"`
	Explanation    string `json:"explanation"`
	ComplexityNote string `json:"complexity_note,omitempty"`
	IsKeyLine      bool   `json:"is_key_line,omitempty"`
}

// ComplexityInfo is one axis of the complexity analysis.
type ComplexityInfo struct {
	Notation    string `json:"notation"`
	Explanation string `json:"explanation"`
}

// Complexity is the full time/space analysis of a solution.
type Complexity struct {
	Time  ComplexityInfo `json:"time"`
	Space ComplexityInfo `json:"space"`
}

// EdgeCase records how the solution handles a boundary condition.
type EdgeCase struct {
	Case          string `json:"case"`
	Handled       bool   `json:"handled"`
	How           string `json:"how"`
	LineReference int    `json:"line_reference,omitempty"`
}

// CommonMistake is a pitfall the solution avoids.
type CommonMistake struct {
	Mistake    string `json:"mistake"`
	WhyWrong   string `json:"why_wrong"`
	HowAvoided string `json:"how_avoided"`
}

// AlternativeApproach sketches a different way to solve the problem.
type AlternativeApproach struct {
	Name            string `json:"name"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	WhenToUse       string `json:"when_to_use"`
	CodeSnippet     string `json:"code_snippet,omitempty"`
}

// TestResult is the outcome of one sample test the backend ran.
type TestResult struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Passed   bool   `json:"passed"`
}

// SolutionData is the structured solution produced by the backend.
type SolutionData struct {
	Code                  string                `json:"code"`
	Language              string                `json:"language"`
	Lines                 []LineExplanation     `json:"lines"`
	Complexity            Complexity            `json:"complexity"`
	EdgeCases             []EdgeCase            `json:"edge_cases,omitempty"`
	CommonMistakes        []CommonMistake       `json:"common_mistakes,omitempty"`
	AlternativeApproaches []AlternativeApproach `json:"alternative_approaches,omitempty"`
	TestResults           []TestResult          `json:"test_results,omitempty"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID          string    `json:"request_id"`
	Mode               string    `json:"mode"`
	PrimaryModel       string    `json:"primary_model"`
	VerificationModel  string    `json:"verification_model,omitempty"`
	VerificationStatus string    `json:"verification_status,omitempty"`
	GeneratedAt        time.Time `json:"generated_at"`
	LatencyMS          int       `json:"latency_ms"`
	Cached             bool      `json:"cached,omitempty"`
	CostEstimateUSD    float64   `json:"cost_estimate_usd,omitempty"`
}

// AnalyzeResponse is the success envelope of the analyze family of
// endpoints (analyze, analyze-image, optimize).
type AnalyzeResponse struct {
	Success  bool             `json:"success"`
	Data     SolutionData     `json:"data"`
	Metadata ResponseMetadata `json:"metadata"`
	Warnings []string         `json:"warnings,omitempty"`
}

// ErrorDetails is the machine-readable error body of a failed request.
type ErrorDetails struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the failure envelope returned by the backend.
type ErrorResponse struct {
	Success  bool             `json:"success"`
	Error    ErrorDetails     `json:"error"`
	Metadata ResponseMetadata `json:"metadata"`
}

// OCRResponse is the extracted text of a problem screenshot.
type OCRResponse struct {
	ExtractedText string   `json:"extracted_text"`
	Confidence    float64  `json:"confidence"`
	Warnings      []string `json:"warnings,omitempty"`
}

// SimplifiedStep is one step of a beginner-level walkthrough.
type SimplifiedStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Analogy     string `json:"analogy,omitempty"`
}

// KeyConcept defines a term a beginner needs for the solution.
type KeyConcept struct {
	Term             string `json:"term"`
	SimpleDefinition string `json:"simple_definition"`
	Example          string `json:"example,omitempty"`
}

// SimplifiedExplanation is the payload of an explain-simple response.
type SimplifiedExplanation struct {
	SimplifiedExplanation string           `json:"simplified_explanation"`
	StepByStep            []SimplifiedStep `json:"step_by_step"`
	KeyConcepts           []KeyConcept     `json:"key_concepts"`
}

// ExplainSimpleResponse is the envelope of the explain-simple endpoint.
type ExplainSimpleResponse struct {
	Success  bool                  `json:"success"`
	Data     SimplifiedExplanation `json:"data"`
	Metadata ResponseMetadata      `json:"metadata"`
	Warnings []string              `json:"warnings,omitempty"`
}

// CodeExplanation is the thought process and per-line commentary for a
// piece of code, as returned by the explain-code endpoint.
type CodeExplanation struct {
	ThoughtProcess string            `json:"thought_process"`
	Lines          []LineExplanation `json:"lines"`
}

// ExecuteResponse is the result of running code in the backend sandbox.
type ExecuteResponse struct {
	Success         bool   `json:"success"`
	Output          string `json:"output"`
	Error           string `json:"error"`
	ExecutionTimeMS int    `json:"execution_time_ms"`
}

// HealthResponse is the backend liveness report.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
