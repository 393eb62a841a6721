package solvent

// AnalyzeRequest asks the backend to solve a coding problem. Used by
// both the structured analyze endpoint and the streaming variant.
type AnalyzeRequest struct {
	ProblemText  string        `json:"problem_text"`
	SampleInput  string        `json:"sample_input,omitempty"`
	SampleOutput string        `json:"sample_output,omitempty"`
	Difficulty   Difficulty    `json:"difficulty,omitempty"`
	Mode         ExecutionMode `json:"mode,omitempty"`
}

// OCRRequest carries a base64-encoded problem screenshot for text
// extraction or one-shot image analysis.
type OCRRequest struct {
	ImageBase64 string `json:"image_base64"`
	ImageType   string `json:"image_type"`
}

// OptimizeRequest asks for an improved version of an existing solution.
type OptimizeRequest struct {
	ProblemText string           `json:"problem_text"`
	CurrentCode string           `json:"current_code"`
	Goal        OptimizationGoal `json:"optimization_goal,omitempty"`
}

// ExplainSimpleRequest asks for a beginner-friendly explanation of a
// solution.
type ExplainSimpleRequest struct {
	ProblemText string      `json:"problem_text"`
	Code        string      `json:"code"`
	TargetLevel TargetLevel `json:"target_level,omitempty"`
}

// ExplainCodeRequest asks for the thought process and line-by-line
// explanation of a solution, typically the one just streamed.
type ExplainCodeRequest struct {
	ProblemText string `json:"problem_text"`
	Code        string `json:"code"`
}

// ExecuteRequest runs solution code in the backend sandbox.
// Timeout is in seconds; zero means the backend default.
type ExecuteRequest struct {
	Code    string `json:"code"`
	Timeout int    `json:"timeout,omitempty"`
}
