package solvent

// ExecutionMode selects how much verification the backend applies.
type ExecutionMode string

const (
	ModeFast          ExecutionMode = "fast"          // primary model only
	ModeVerified      ExecutionMode = "verified"      // plus reviewer verification
	ModeComprehensive ExecutionMode = "comprehensive" // verify, then refine
)
