package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/solventhq/solvent"
)

// ResultView renders the structured, non-code sections of the display:
// complexity, edge cases, simplified explanation and execution output.
type ResultView struct {
	styles   Styles
	renderer *glamour.TermRenderer
}

// NewResultView creates a ResultView. width bounds markdown word wrap.
func NewResultView(styles Styles, width int) ResultView {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r = nil // fall back to raw markdown
	}
	return ResultView{styles: styles, renderer: r}
}

// Render builds the sections below the code panel from a snapshot.
func (rv ResultView) Render(snap solvent.Snapshot) string {
	var sections []string

	if snap.Result != nil {
		if s := rv.complexitySection(snap.Result.Data.Complexity); s != "" {
			sections = append(sections, s)
		}
		if s := rv.edgeCaseSection(snap.Result.Data.EdgeCases); s != "" {
			sections = append(sections, s)
		}
		if s := rv.testSection(snap.Result.Data.TestResults); s != "" {
			sections = append(sections, s)
		}
	}
	if snap.Simple != nil {
		sections = append(sections, rv.simpleSection(snap.Simple.Data))
	}
	if snap.Execution != nil {
		sections = append(sections, rv.executionSection(snap.Execution))
	}
	for _, w := range snap.Warnings {
		sections = append(sections, rv.styles.Muted.Render("! "+w))
	}

	return strings.Join(sections, "\n\n")
}

func (rv ResultView) complexitySection(c solvent.Complexity) string {
	if c.Time.Notation == "" && c.Space.Notation == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(rv.styles.Accent.Render("Complexity"))
	b.WriteString("\n")
	if c.Time.Notation != "" {
		fmt.Fprintf(&b, "  time  %s  %s\n", c.Time.Notation, c.Time.Explanation)
	}
	if c.Space.Notation != "" {
		fmt.Fprintf(&b, "  space %s  %s", c.Space.Notation, c.Space.Explanation)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (rv ResultView) edgeCaseSection(cases []solvent.EdgeCase) string {
	if len(cases) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(rv.styles.Accent.Render("Edge cases"))
	for _, ec := range cases {
		mark := rv.styles.Error.Render("✗")
		if ec.Handled {
			mark = rv.styles.Success.Render("✓")
		}
		b.WriteString("\n  " + mark + " " + ec.Case)
		if ec.How != "" {
			b.WriteString(rv.styles.Muted.Render(" — " + ec.How))
		}
		if ec.LineReference > 0 {
			b.WriteString(rv.styles.Muted.Render(fmt.Sprintf(" (line %d)", ec.LineReference)))
		}
	}
	return b.String()
}

func (rv ResultView) testSection(results []solvent.TestResult) string {
	if len(results) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(rv.styles.Accent.Render("Sample tests"))
	for i, tr := range results {
		if tr.Passed {
			b.WriteString("\n  " + rv.styles.Success.Render(fmt.Sprintf("✓ test %d passed", i+1)))
		} else {
			b.WriteString("\n  " + rv.styles.Error.Render(fmt.Sprintf("✗ test %d failed", i+1)))
			b.WriteString(rv.styles.Muted.Render(fmt.Sprintf(" expected %q, got %q", tr.Expected, tr.Actual)))
		}
	}
	return b.String()
}

// simpleSection renders the beginner walkthrough as markdown so
// analogies and inline code read well in the terminal.
func (rv ResultView) simpleSection(data solvent.SimplifiedExplanation) string {
	var md strings.Builder
	md.WriteString("## In plain words\n\n")
	md.WriteString(data.SimplifiedExplanation)
	md.WriteString("\n")
	for _, step := range data.StepByStep {
		fmt.Fprintf(&md, "\n%d. **%s** %s", step.Step, step.Title, step.Explanation)
		if step.Analogy != "" {
			fmt.Fprintf(&md, " _(%s)_", step.Analogy)
		}
	}
	if len(data.KeyConcepts) > 0 {
		md.WriteString("\n\n### Key concepts\n")
		for _, kc := range data.KeyConcepts {
			fmt.Fprintf(&md, "\n- **%s** — %s", kc.Term, kc.SimpleDefinition)
		}
	}
	return rv.markdown(md.String())
}

func (rv ResultView) executionSection(resp *solvent.ExecuteResponse) string {
	var b strings.Builder
	b.WriteString(rv.styles.Accent.Render("Execution"))
	if resp.Success {
		b.WriteString(rv.styles.Success.Render(fmt.Sprintf(" ok (%dms)", resp.ExecutionTimeMS)))
	} else {
		b.WriteString(rv.styles.Error.Render(" failed"))
	}
	if out := strings.TrimRight(resp.Output, "\n"); out != "" {
		b.WriteString("\n" + out)
	}
	if resp.Error != "" {
		b.WriteString("\n" + rv.styles.Error.Render(strings.TrimRight(resp.Error, "\n")))
	}
	return b.String()
}

func (rv ResultView) markdown(src string) string {
	if rv.renderer == nil {
		return src
	}
	out, err := rv.renderer.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}
