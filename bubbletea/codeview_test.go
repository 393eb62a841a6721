package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventhq/solvent"
	bt "github.com/solventhq/solvent/bubbletea"
)

func testCodeView() bt.CodeView {
	return bt.NewCodeView(bt.NewStyles(solvent.DefaultTheme()))
}

func TestCodeView_Render(t *testing.T) {
	t.Parallel()

	t.Run("empty code renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, testCodeView().Render("", "python", -1, 80, nil))
	})

	t.Run("one row per source line with gutter numbers", func(t *testing.T) {
		t.Parallel()
		out := testCodeView().Render("a = 1\nb = 2\nc = 3", "python", -1, 80, nil)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "1")
		assert.Contains(t, lines[2], "3")
	})

	t.Run("trailing newline does not add a phantom row", func(t *testing.T) {
		t.Parallel()
		out := testCodeView().Render("a = 1\nb = 2\n", "python", -1, 80, nil)
		assert.Len(t, strings.Split(out, "\n"), 2)
	})

	t.Run("highlighted line keeps its text plain", func(t *testing.T) {
		t.Parallel()
		out := testCodeView().Render("first line\nsecond line", "", 2, 80, nil)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		// The selected row drops syntax coloring, so the source text
		// appears verbatim.
		assert.Contains(t, lines[1], "second line")
	})

	t.Run("key lines carry a marker", func(t *testing.T) {
		t.Parallel()
		notes := &solvent.CodeExplanation{
			Lines: []solvent.LineExplanation{
				{LineNumber: 2, IsKeyLine: true},
			},
		}
		out := testCodeView().Render("plain\nimportant", "", -1, 80, notes)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], "*")
		assert.NotContains(t, lines[0], "*")
	})
}

func TestAnnotation(t *testing.T) {
	t.Parallel()
	notes := &solvent.CodeExplanation{
		Lines: []solvent.LineExplanation{
			{LineNumber: 1, Explanation: "reads the input"},
			{LineNumber: 2, Explanation: "the core loop", ComplexityNote: "O(n)"},
		},
	}

	assert.Equal(t, "reads the input", bt.Annotation(notes, 1))
	assert.Equal(t, "the core loop (O(n))", bt.Annotation(notes, 2))
	assert.Empty(t, bt.Annotation(notes, 3))
	assert.Empty(t, bt.Annotation(notes, -1))
	assert.Empty(t, bt.Annotation(nil, 1))
}
