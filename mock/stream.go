package mock

import (
	"io"
	"strings"

	"github.com/solventhq/solvent"
)

// Stream is a test double for solvent.Stream.
// Set the function fields for the methods you need. NextFn panics when
// nil to catch missing setup. StateFn, TextFn and CloseFn are nil-safe
// (zero value, empty string, no-op) because test code commonly calls
// defer stream.Close() and these methods rarely need custom behavior.
type Stream struct {
	NextFn  func() (solvent.Event, error)
	StateFn func() solvent.StreamState
	TextFn  func() string
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (solvent.Event, error) {
	return s.NextFn()
}

// State delegates to StateFn. Returns StreamStateNew when StateFn is nil.
func (s *Stream) State() solvent.StreamState {
	if s.StateFn == nil {
		return solvent.StreamStateNew
	}
	return s.StateFn()
}

// Text delegates to TextFn. Returns "" when TextFn is nil.
func (s *Stream) Text() string {
	if s.TextFn == nil {
		return ""
	}
	return s.TextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// NewScript returns a Stream that replays the given events in order and
// then returns io.EOF. A script that ends without a terminal event
// models a transport that died mid-stream. Text accumulates chunk text
// as events are consumed.
func NewScript(events ...solvent.Event) *Stream {
	var (
		i     int
		state = solvent.StreamStateNew
		text  strings.Builder
	)
	s := &Stream{}
	s.NextFn = func() (solvent.Event, error) {
		if i >= len(events) {
			return nil, io.EOF
		}
		evt := events[i]
		i++
		switch e := evt.(type) {
		case solvent.EventChunk:
			state = solvent.StreamStateStreaming
			text.WriteString(e.Text)
		case solvent.EventComplete:
			state = solvent.StreamStateComplete
		case solvent.EventFailure:
			state = solvent.StreamStateFailed
		}
		return evt, nil
	}
	s.StateFn = func() solvent.StreamState { return state }
	s.TextFn = func() string { return text.String() }
	return s
}
