package solvent_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventhq/solvent"
)

func TestStore_Snapshot(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()
	snap := st.Snapshot()
	assert.Equal(t, solvent.PhaseIdle, snap.Phase)
	assert.Equal(t, -1, snap.Highlight)
	assert.Empty(t, snap.StreamingText)
	assert.NoError(t, snap.Err)
}

func TestStore_StreamingLifecycle(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()

	st.SetStreaming(true)
	assert.Equal(t, solvent.PhaseStreaming, st.Snapshot().Phase)

	st.AppendStreamingText("def solve():")
	st.AppendStreamingText("\n    pass")
	assert.Equal(t, "def solve():\n    pass", st.Snapshot().StreamingText)

	st.FinishStreaming()
	snap := st.Snapshot()
	assert.Equal(t, solvent.PhaseCompleted, snap.Phase)
	assert.Equal(t, "def solve():\n    pass", snap.StreamingText)
}

func TestStore_ClearStreaming(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()
	st.SetProblem("two sum with a twist", "1 2", "3")
	st.SetResult(&solvent.AnalyzeResponse{Success: true})
	st.SetStreaming(true)
	st.AppendStreamingText("stale")
	st.SetHighlight(3)

	st.ClearStreaming()

	snap := st.Snapshot()
	assert.Empty(t, snap.StreamingText)
	assert.Equal(t, solvent.PhaseIdle, snap.Phase)
	assert.Equal(t, -1, snap.Highlight)
	// Inputs and finalized results survive a streaming reset.
	assert.Equal(t, "two sum with a twist", snap.ProblemText)
	require.NotNil(t, snap.Result)
}

func TestStore_SetStreamingOff(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()
	st.SetStreaming(true)
	st.SetStreaming(false)
	assert.Equal(t, solvent.PhaseIdle, st.Snapshot().Phase)

	// Turning streaming off does not demote a terminal phase.
	st.FinishStreaming()
	st.SetStreaming(false)
	assert.Equal(t, solvent.PhaseCompleted, st.Snapshot().Phase)
}

func TestStore_FailStreaming(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()
	st.SetStreaming(true)
	wantErr := errors.New("generation failed")
	st.FailStreaming(wantErr)

	snap := st.Snapshot()
	assert.Equal(t, solvent.PhaseFailed, snap.Phase)
	assert.ErrorIs(t, snap.Err, wantErr)
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()
	first := errors.New("first")
	second := errors.New("second")

	st.SetError(first)
	st.SetError(second)
	assert.ErrorIs(t, st.Snapshot().Err, second)

	st.ClearError()
	assert.NoError(t, st.Snapshot().Err)
}

func TestStore_SecondaryFlags(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()
	st.SetExtracting(true)
	st.SetExecuting(true)
	st.SetExplaining(true)

	snap := st.Snapshot()
	assert.True(t, snap.Extracting)
	assert.True(t, snap.Executing)
	assert.True(t, snap.Explaining)

	st.SetExecuting(false)
	assert.False(t, st.Snapshot().Executing)
	assert.True(t, st.Snapshot().Extracting)
}

func TestStore_ClearAll(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()
	st.SetProblem("a problem statement", "", "")
	st.SetMode(solvent.ModeVerified)
	st.AppendStreamingText("text")
	st.SetResult(&solvent.AnalyzeResponse{})
	st.SetError(errors.New("boom"))
	st.SetHighlight(2)

	st.ClearAll()

	snap := st.Snapshot()
	assert.Equal(t, solvent.Snapshot{Highlight: -1}, snap)
}

// The session goroutine appends while the UI reads snapshots; neither
// side may observe a torn state.
func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	st := solvent.NewStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			st.AppendStreamingText("x")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = st.Snapshot()
		}
	}()
	wg.Wait()

	assert.Len(t, st.Snapshot().StreamingText, 1000)
}
