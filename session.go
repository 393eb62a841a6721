package solvent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// SessionCallbacks receive the events of one streaming session. They
// run on the session goroutine. Callbacks bound to a superseded or
// cancelled session become inert: the controller stops invoking them
// once a newer session starts or Cancel is called.
type SessionCallbacks struct {
	OnChunk    func(text string)
	OnComplete func()
	OnError    func(err error)
}

// Controller orchestrates streaming analysis sessions. At most one
// session is live at a time: Start cancels and permanently silences any
// previous session before launching the next, so two sessions can never
// interleave writes into the store's streaming fields.
type Controller struct {
	streamer Streamer
	store    *Store
	timeout  time.Duration

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithStreamTimeout sets the wall-clock budget for a whole streaming
// exchange. Zero disables the timeout.
func WithStreamTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) { c.timeout = d }
}

// NewController creates a Controller writing to the given store.
func NewController(streamer Streamer, store *Store, opts ...ControllerOption) *Controller {
	c := &Controller{streamer: streamer, store: store}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start begins a new streaming session. Any live session is cancelled
// first and its callbacks silenced. The caller must have validated req;
// validation failures never reach the transport.
func (c *Controller) Start(ctx context.Context, req AnalyzeRequest, cb SessionCallbacks) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen

	var sctx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		sctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		sctx, cancel = context.WithCancel(ctx)
	}
	c.cancel = cancel
	c.mu.Unlock()

	c.store.ClearStreaming()
	c.store.ClearError()
	c.store.SetStreaming(true)

	go c.run(sctx, cancel, gen, req, cb)
}

// Cancel aborts the live session, if any. Cancellation is silent: no
// failure is reported and no further callbacks fire.
func (c *Controller) Cancel() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.gen++
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.store.SetStreaming(false)
}

// Active reports whether a session is live.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, gen uint64, req AnalyzeRequest, cb SessionCallbacks) {
	defer cancel()

	stream, err := c.streamer.StreamAnalyze(ctx, req)
	if err != nil {
		c.fail(ctx, gen, err, cb)
		return
	}
	defer stream.Close()

	for {
		evt, err := stream.Next()
		if err != nil {
			if err == io.EOF {
				// End-of-stream without a terminal record: the
				// truncated trailer was discarded, but completion is
				// only ever explicit.
				err = fmt.Errorf("stream ended before completion")
			}
			c.fail(ctx, gen, err, cb)
			return
		}

		switch e := evt.(type) {
		case EventChunk:
			if !c.current(gen, false, func() { c.store.AppendStreamingText(e.Text) }) {
				return
			}
			if cb.OnChunk != nil {
				cb.OnChunk(e.Text)
			}
		case EventComplete:
			if !c.current(gen, true, func() { c.store.FinishStreaming() }) {
				return
			}
			if cb.OnComplete != nil {
				cb.OnComplete()
			}
			return
		case EventFailure:
			if !c.current(gen, true, func() { c.store.FailStreaming(errors.New(e.Message)) }) {
				return
			}
			if cb.OnError != nil {
				cb.OnError(errors.New(e.Message))
			}
			return
		}
	}
}

// fail reports a transport-level fault, unless the session was
// cancelled by the caller, in which case it terminates silently.
// Exceeding the stream timeout is reported as ErrTimeout.
func (c *Controller) fail(ctx context.Context, gen uint64, err error, cb SessionCallbacks) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded):
		err = ErrTimeout
	case errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled):
		return
	}
	if !c.current(gen, true, func() { c.store.FailStreaming(err) }) {
		return
	}
	if cb.OnError != nil {
		cb.OnError(err)
	}
}

// current runs mutate under the controller lock if gen is still the
// live session, and reports whether it was. Terminal deliveries release
// ownership of the session slot.
func (c *Controller) current(gen uint64, terminal bool, mutate func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	if terminal {
		c.cancel = nil
	}
	mutate()
	return true
}
