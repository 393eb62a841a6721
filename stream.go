package solvent

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Mid-stream, receiving chunks.
	StreamStateComplete                     // Terminal [DONE] record observed.
	StreamStateFailed                       // Terminal [ERROR] record or transport fault.
	StreamStateClosed                       // Close() called before a terminal state.
)

// Stream is a pull-based iterator over protocol events from one
// streaming exchange. Cancellation flows through the context passed to
// the transport that created the stream.
//
// Next() returns the next event. Terminal events (EventComplete,
// EventFailure) are returned like any other; after one has been
// delivered, Next() returns io.EOF. A transport fault before a terminal
// event surfaces as a non-EOF error; end-of-stream without a terminal
// record is such a fault, since genuine completion is always explicit.
//
// Text() returns the concatenation of all chunk text delivered so far,
// in arrival order. It is valid in every state and reflects a partial
// artifact until StreamStateComplete.
type Stream interface {
	Next() (Event, error)
	State() StreamState
	Text() string
	Close() error
}
