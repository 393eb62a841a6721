package solvent

import "sync"

// Phase is the lifecycle state of the streaming session slot.
type Phase int

const (
	PhaseIdle      Phase = iota // No session, or cleanly cancelled.
	PhaseStreaming              // Chunks arriving.
	PhaseCompleted              // Terminal completion observed.
	PhaseFailed                 // Terminal failure observed.
)

// Snapshot is a point-in-time copy of the store's fields, safe to read
// without further synchronization.
type Snapshot struct {
	// Input fields.
	ProblemText  string
	SampleInput  string
	SampleOutput string
	Difficulty   Difficulty
	Mode         ExecutionMode

	// Streaming session slot.
	StreamingText string
	Phase         Phase

	// Finalized results from the non-streaming paths.
	Result    *AnalyzeResponse
	Simple    *ExplainSimpleResponse
	CodeNotes *CodeExplanation
	Execution *ExecuteResponse
	Warnings  []string

	// Err is the most recent failure; it replaces any previous one.
	Err error

	// Highlight is the selected line in the code panel, -1 for none.
	Highlight int

	// Independent loading flags for secondary remote operations.
	Extracting bool
	Executing  bool
	Explaining bool
}

// Store is the single source of truth for client state. It is mutated
// only through named operations and read through Snapshot. The session
// goroutine writes the streaming fields while the UI loop reads, so
// every operation takes the store lock.
type Store struct {
	mu sync.Mutex
	s  Snapshot
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{s: Snapshot{Highlight: -1}}
}

// Snapshot returns a copy of the current state.
func (st *Store) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}

// SetProblem installs the problem statement and optional samples.
func (st *Store) SetProblem(text, sampleInput, sampleOutput string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.ProblemText = text
	st.s.SampleInput = sampleInput
	st.s.SampleOutput = sampleOutput
}

// SetDifficulty records the user-declared difficulty.
func (st *Store) SetDifficulty(d Difficulty) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Difficulty = d
}

// SetMode records the execution mode for analyze requests.
func (st *Store) SetMode(m ExecutionMode) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Mode = m
}

// AppendStreamingText concatenates a decoded chunk onto the streaming
// buffer. Ordering is guaranteed by the single delivery goroutine.
func (st *Store) AppendStreamingText(fragment string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.StreamingText += fragment
}

// ClearStreaming resets the streaming buffer and phase without touching
// input fields or prior finalized results.
func (st *Store) ClearStreaming() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.StreamingText = ""
	st.s.Phase = PhaseIdle
	st.s.Highlight = -1
}

// SetStreaming toggles between the streaming and idle phases. It does
// not clear buffers.
func (st *Store) SetStreaming(on bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if on {
		st.s.Phase = PhaseStreaming
	} else if st.s.Phase == PhaseStreaming {
		st.s.Phase = PhaseIdle
	}
}

// FinishStreaming marks the session complete.
func (st *Store) FinishStreaming() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Phase = PhaseCompleted
}

// FailStreaming marks the session failed and records the error.
func (st *Store) FailStreaming(err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Phase = PhaseFailed
	st.s.Err = err
}

// SetResult installs a finalized structured result from the
// non-streaming path.
func (st *Store) SetResult(resp *AnalyzeResponse) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Result = resp
	if resp != nil {
		st.s.Warnings = resp.Warnings
	}
}

// SetSimple installs a finalized simplified explanation.
func (st *Store) SetSimple(resp *ExplainSimpleResponse) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Simple = resp
}

// SetCodeNotes installs per-line commentary for the current code.
func (st *Store) SetCodeNotes(notes *CodeExplanation) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.CodeNotes = notes
}

// SetExecution installs a sandbox run result.
func (st *Store) SetExecution(resp *ExecuteResponse) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Execution = resp
}

// SetError records a failure, replacing any previous one.
func (st *Store) SetError(err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Err = err
}

// ClearError dismisses the current error without affecting in-progress
// streaming.
func (st *Store) ClearError() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Err = nil
}

// SetHighlight selects a line in the code panel, -1 for none.
func (st *Store) SetHighlight(line int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Highlight = line
}

// SetExtracting toggles the OCR loading flag.
func (st *Store) SetExtracting(on bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Extracting = on
}

// SetExecuting toggles the sandbox-run loading flag.
func (st *Store) SetExecuting(on bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Executing = on
}

// SetExplaining toggles the explanation loading flag.
func (st *Store) SetExplaining(on bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.Explaining = on
}

// ClearAll resets every field to its initial value. The store holds no
// subscriptions or timers, so there is nothing else to tear down.
func (st *Store) ClearAll() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s = Snapshot{Highlight: -1}
}
