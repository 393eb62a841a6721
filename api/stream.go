package api

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/solventhq/solvent"
)

// stream implements [solvent.Stream] over an HTTP response body,
// delegating record framing and payload decoding to [solvent.Parser].
type stream struct {
	body   io.ReadCloser
	ctx    context.Context
	parser *solvent.Parser
	queue  []solvent.Event
	state  solvent.StreamState
	text   strings.Builder
	err    error // terminal error, if any
	rbuf   []byte
}

// Interface compliance check.
var _ solvent.Stream = (*stream)(nil)

func newStream(ctx context.Context, body io.ReadCloser) *stream {
	return &stream{
		body:   body,
		ctx:    ctx,
		parser: solvent.NewParser(),
		state:  solvent.StreamStateNew,
		rbuf:   make([]byte, 4096),
	}
}

// Next returns the next protocol event. Terminal events are delivered
// like any other; after one, Next returns io.EOF. End of body without a
// terminal record is a transport fault, not completion.
func (s *stream) Next() (solvent.Event, error) {
	switch s.state {
	case solvent.StreamStateComplete:
		return nil, io.EOF
	case solvent.StreamStateFailed:
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	case solvent.StreamStateClosed:
		return nil, solvent.ErrStreamClosed
	}

	for {
		if len(s.queue) > 0 {
			evt := s.queue[0]
			s.queue = s.queue[1:]
			return s.deliver(evt), nil
		}

		n, err := s.body.Read(s.rbuf)
		if n > 0 {
			s.state = solvent.StreamStateStreaming
			s.queue = append(s.queue, s.parser.Feed(string(s.rbuf[:n]))...)
		}
		if err != nil {
			if len(s.queue) > 0 {
				// Drain parsed events before surfacing the error.
				continue
			}
			s.terminate(err)
			return nil, s.err
		}
	}
}

// deliver applies an event's side effects and returns it.
func (s *stream) deliver(evt solvent.Event) solvent.Event {
	switch e := evt.(type) {
	case solvent.EventChunk:
		s.state = solvent.StreamStateStreaming
		s.text.WriteString(e.Text)
	case solvent.EventComplete:
		s.state = solvent.StreamStateComplete
	case solvent.EventFailure:
		// Server-reported failure is a semantic event; subsequent
		// Next calls return io.EOF rather than an error.
		s.state = solvent.StreamStateFailed
	}
	return evt
}

// terminate records a transport-level end of stream.
func (s *stream) terminate(err error) {
	s.state = solvent.StreamStateFailed
	if cerr := s.ctx.Err(); cerr != nil {
		s.err = cerr
		return
	}
	if err == io.EOF {
		s.err = fmt.Errorf("api: stream ended before completion")
		return
	}
	s.err = fmt.Errorf("api: %w", err)
}

// State returns the current stream state.
func (s *stream) State() solvent.StreamState {
	return s.state
}

// Text returns all chunk text delivered so far, in arrival order.
func (s *stream) Text() string {
	return s.text.String()
}

// Close releases the underlying response body. Closing before a
// terminal event marks the stream closed; closing after is a no-op
// beyond releasing the connection.
func (s *stream) Close() error {
	if s.state != solvent.StreamStateComplete && s.state != solvent.StreamStateFailed {
		s.state = solvent.StreamStateClosed
	}
	return s.body.Close()
}
