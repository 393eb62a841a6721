package solvent

// Event is a sealed interface representing one semantic event of the
// solution stream. Events are purely semantic. Transport failures come
// from Stream.Next()'s error return, not from events.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventChunk carries a decoded piece of generated solution text.
type EventChunk struct {
	Text string
}

func (EventChunk) event() {}

// EventComplete signals that the generator finished; no chunks follow.
type EventComplete struct{}

func (EventComplete) event() {}

// EventFailure signals that the generator reported an error.
// Message is passed through to the user verbatim.
type EventFailure struct {
	Message string
}

func (EventFailure) event() {}

// IsTerminal reports whether evt ends the stream. At most one terminal
// event is produced per session, always last.
func IsTerminal(evt Event) bool {
	switch evt.(type) {
	case EventComplete, EventFailure:
		return true
	}
	return false
}

// Interface compliance checks.
var (
	_ Event = EventChunk{}
	_ Event = EventComplete{}
	_ Event = EventFailure{}
)
