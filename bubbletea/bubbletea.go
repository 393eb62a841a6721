// Package bubbletea provides the Bubble Tea TUI for solvent.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solventhq/solvent"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. Cancelling the context quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// StreamTickMsg signals that the streaming buffer changed and the view
// should re-render from the store. Ticks coalesce: one pending tick
// covers any number of chunks.
type StreamTickMsg struct {
	SID int
}

// SessionDoneMsg signals that a streaming session reached a terminal
// state. Err is nil on completion.
type SessionDoneMsg struct {
	SID int
	Err error
}

// ExecuteDoneMsg carries the result of a sandbox run.
type ExecuteDoneMsg struct {
	Resp *solvent.ExecuteResponse
	Err  error
}

// ExplainDoneMsg carries the result of an explain-simple request.
type ExplainDoneMsg struct {
	Resp *solvent.ExplainSimpleResponse
	Err  error
}

// CodeNotesMsg carries per-line commentary fetched after a stream
// completes.
type CodeNotesMsg struct {
	Notes *solvent.CodeExplanation
	Err   error
}

// session bridges one streaming session's callbacks into the Bubble
// Tea message loop. Callbacks run on the session goroutine; the
// channels decouple them from Update.
type session struct {
	id     int
	notify chan struct{}
	done   chan error
	quit   chan struct{}
}

func newSession(id int) *session {
	return &session{
		id:     id,
		notify: make(chan struct{}, 1),
		done:   make(chan error, 1),
		quit:   make(chan struct{}),
	}
}

// callbacks returns SessionCallbacks that forward into the session's
// channels. The store already holds the chunk text when OnChunk fires,
// so chunks collapse into a coalesced notification.
func (s *session) callbacks() solvent.SessionCallbacks {
	return solvent.SessionCallbacks{
		OnChunk: func(string) {
			select {
			case s.notify <- struct{}{}:
			default:
			}
		},
		OnComplete: func() { s.done <- nil },
		OnError:    func(err error) { s.done <- err },
	}
}

// listen waits for the next session signal. The quit channel unblocks
// the command when the model abandons the session.
func listen(s *session) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.notify:
			return StreamTickMsg{SID: s.id}
		case err := <-s.done:
			return SessionDoneMsg{SID: s.id, Err: err}
		case <-s.quit:
			return nil
		}
	}
}
