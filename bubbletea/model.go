package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solventhq/solvent"
)

var _ tea.Model = Model{}

// focusArea selects which pane receives navigation keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Model is the Bubble Tea model for the solvent TUI.
type Model struct {
	// Input is the problem statement editor. Exported for test access.
	Input textarea.Model
	// Viewport is the scrollable result area. Exported for test access.
	Viewport viewport.Model

	store      *solvent.Store
	controller *solvent.Controller
	backend    solvent.Backend
	theme      solvent.Theme
	styles     Styles
	spinner    spinner.Model
	codeView   CodeView
	resultView ResultView

	session *session
	nextSID int
	lastReq solvent.AnalyzeRequest
	haveReq bool

	focus  focusArea
	ready  bool
	width  int
	height int
}

// New creates a TUI Model over the given store, controller and backend.
func New(store *solvent.Store, controller *solvent.Controller, backend solvent.Backend, theme solvent.Theme) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste a problem statement..."
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	styles := NewStyles(theme)
	return Model{
		Input:      ta,
		store:      store,
		controller: controller,
		backend:    backend,
		theme:      theme,
		styles:     styles,
		spinner:    sp,
		codeView:   NewCodeView(styles),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.busy() {
			return m, cmd
		}
		return m, nil

	case StreamTickMsg:
		if m.session == nil || msg.SID != m.session.id {
			return m, nil
		}
		m = m.refresh()
		return m, listen(m.session)

	case SessionDoneMsg:
		if m.session == nil || msg.SID != m.session.id {
			return m, nil
		}
		m.session = nil
		m = m.refresh()
		cmd := m.Input.Focus()
		if msg.Err == nil {
			// Fetch per-line commentary for the finished solution.
			snap := m.store.Snapshot()
			if code := currentCode(snap); code != "" {
				m.store.SetExplaining(true)
				return m, tea.Batch(cmd, fetchCodeNotes(m.backend, snap.ProblemText, code))
			}
		}
		return m, cmd

	case ExecuteDoneMsg:
		m.store.SetExecuting(false)
		if msg.Err != nil {
			m.store.SetError(msg.Err)
		} else {
			m.store.SetExecution(msg.Resp)
		}
		return m.refresh(), nil

	case ExplainDoneMsg:
		m.store.SetExplaining(false)
		if msg.Err != nil {
			m.store.SetError(msg.Err)
		} else {
			m.store.SetSimple(msg.Resp)
		}
		return m.refresh(), nil

	case CodeNotesMsg:
		m.store.SetExplaining(false)
		// A missing commentary is not worth an error banner; the code
		// panel just stays unannotated.
		if msg.Err == nil {
			m.store.SetCodeNotes(msg.Notes)
		}
		return m.refresh(), nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	if m.focus == focusInput {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.titleLine())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	inputH := 5
	titleH := 1
	statusH := 1
	spacing := 3
	vpHeight := msg.Height - inputH - titleH - statusH - spacing
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.SetWidth(msg.Width)
	m.Input.SetHeight(inputH)
	m.resultView = NewResultView(m.styles, msg.Width)
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.controller.Active() {
			return m.cancelSession(), nil
		}
		return m, tea.Quit

	case "ctrl+s":
		return m.submit()

	case "ctrl+r":
		if m.haveReq && !m.controller.Active() {
			return m.startStream(m.lastReq)
		}
		return m, nil

	case "ctrl+e":
		return m.execute()

	case "ctrl+g":
		return m.explainSimple()

	case "ctrl+t":
		m.store.SetMode(nextMode(m.store.Snapshot().Mode))
		return m.refresh(), nil

	case "ctrl+l":
		m = m.cancelSession()
		m.store.ClearAll()
		m.Input.Reset()
		m.haveReq = false
		return m.refresh(), nil

	case "esc":
		snap := m.store.Snapshot()
		if snap.Err != nil {
			m.store.ClearError()
		} else if snap.Highlight >= 0 {
			m.store.SetHighlight(-1)
		}
		return m.refresh(), nil

	case "tab":
		if m.focus == focusInput {
			m.focus = focusResults
			m.Input.Blur()
		} else {
			m.focus = focusInput
			return m, m.Input.Focus()
		}
		return m, nil

	case "up", "k":
		if m.focus == focusResults {
			return m.moveHighlight(-1), nil
		}

	case "down", "j":
		if m.focus == focusResults {
			return m.moveHighlight(1), nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit validates the problem input and starts a streaming session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.Input.Value())
	snap := m.store.Snapshot()
	req := solvent.AnalyzeRequest{
		ProblemText:  text,
		SampleInput:  snap.SampleInput,
		SampleOutput: snap.SampleOutput,
		Difficulty:   snap.Difficulty,
		Mode:         snap.Mode,
	}
	if err := req.Validate(); err != nil {
		m.store.SetError(err)
		return m.refresh(), nil
	}
	m.store.SetProblem(text, snap.SampleInput, snap.SampleOutput)
	return m.startStream(req)
}

// startStream begins a streaming session for req. Any live session is
// superseded by the controller; its bridge is torn down here.
func (m Model) startStream(req solvent.AnalyzeRequest) (tea.Model, tea.Cmd) {
	if m.session != nil {
		close(m.session.quit)
	}
	m.nextSID++
	s := newSession(m.nextSID)
	m.session = s
	m.lastReq = req
	m.haveReq = true

	m.controller.Start(context.Background(), req, s.callbacks())
	m = m.refresh()
	return m, tea.Batch(listen(s), m.spinner.Tick)
}

// cancelSession aborts the live session silently.
func (m Model) cancelSession() Model {
	m.controller.Cancel()
	if m.session != nil {
		close(m.session.quit)
		m.session = nil
	}
	return m.refresh()
}

// execute runs the current solution code in the backend sandbox.
func (m Model) execute() (tea.Model, tea.Cmd) {
	snap := m.store.Snapshot()
	code := currentCode(snap)
	if code == "" || snap.Executing {
		return m, nil
	}
	m.store.SetExecuting(true)
	return m.refresh(), tea.Batch(runCode(m.backend, code), m.spinner.Tick)
}

// explainSimple requests a beginner-level walkthrough of the solution.
func (m Model) explainSimple() (tea.Model, tea.Cmd) {
	snap := m.store.Snapshot()
	code := currentCode(snap)
	if code == "" || snap.ProblemText == "" || snap.Explaining {
		return m, nil
	}
	m.store.SetExplaining(true)
	return m.refresh(), tea.Batch(fetchSimple(m.backend, snap.ProblemText, code), m.spinner.Tick)
}

// moveHighlight shifts the code panel selection by delta lines.
func (m Model) moveHighlight(delta int) Model {
	snap := m.store.Snapshot()
	code := currentCode(snap)
	if code == "" {
		return m
	}
	total := strings.Count(strings.TrimRight(code, "\n"), "\n") + 1
	line := snap.Highlight
	if line < 1 {
		line = 0
	}
	line += delta
	if line < 1 {
		line = 1
	}
	if line > total {
		line = total
	}
	m.store.SetHighlight(line)
	return m.refresh()
}

// refresh re-renders the viewport from the current store snapshot.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderContent(m.store.Snapshot()))
	if m.store.Snapshot().Phase == solvent.PhaseStreaming {
		m.Viewport.GotoBottom()
	}
	return m
}

func (m Model) renderContent(snap solvent.Snapshot) string {
	code := currentCode(snap)
	if code == "" {
		return m.styles.Muted.Render("No solution yet. Paste a problem and press ctrl+s.")
	}

	var sections []string
	sections = append(sections, m.codeView.Render(code, codeLanguage(snap), snap.Highlight, m.width, snap.CodeNotes))

	if note := Annotation(snap.CodeNotes, snap.Highlight); note != "" {
		sections = append(sections, m.styles.KeyLine.Render("> ")+note)
	}
	if snap.CodeNotes != nil && snap.CodeNotes.ThoughtProcess != "" && snap.Highlight < 0 {
		sections = append(sections, m.styles.Muted.Render(snap.CodeNotes.ThoughtProcess))
	}
	if rest := m.resultView.Render(snap); rest != "" {
		sections = append(sections, rest)
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) titleLine() string {
	snap := m.store.Snapshot()
	title := m.styles.Accent.Render("solvent")
	mode := string(snap.Mode)
	if mode == "" {
		mode = string(solvent.ModeFast)
	}
	info := m.styles.Muted.Render(fmt.Sprintf("  mode:%s", mode))
	if snap.Difficulty != "" {
		info += m.styles.Muted.Render(fmt.Sprintf("  difficulty:%s", snap.Difficulty))
	}
	return title + info
}

func (m Model) statusLine() string {
	snap := m.store.Snapshot()
	if snap.Err != nil {
		return m.styles.ErrorBanner.Render(fmt.Sprintf("Error: %v  (esc to dismiss)", snap.Err))
	}
	if snap.Phase == solvent.PhaseStreaming {
		return m.spinner.View() + m.styles.Muted.Render(" streaming — ctrl+c to cancel")
	}
	switch {
	case snap.Extracting:
		return m.spinner.View() + m.styles.Muted.Render(" extracting text...")
	case snap.Executing:
		return m.spinner.View() + m.styles.Muted.Render(" running code...")
	case snap.Explaining:
		return m.spinner.View() + m.styles.Muted.Render(" explaining...")
	}
	if snap.Phase == solvent.PhaseCompleted {
		return m.styles.Success.Render("done") +
			m.styles.Muted.Render(" — ctrl+e run  ctrl+g explain  ctrl+r retry  tab inspect")
	}
	return m.styles.Muted.Render("ctrl+s solve  ctrl+t mode  ctrl+l clear  ctrl+c quit")
}

// busy reports whether any remote operation is in flight, which keeps
// the spinner ticking.
func (m Model) busy() bool {
	snap := m.store.Snapshot()
	return snap.Phase == solvent.PhaseStreaming || snap.Extracting || snap.Executing || snap.Explaining
}

// currentCode picks the code to display: a structured result wins over
// the raw streamed text.
func currentCode(snap solvent.Snapshot) string {
	if snap.Result != nil && snap.Result.Data.Code != "" {
		return snap.Result.Data.Code
	}
	return snap.StreamingText
}

func codeLanguage(snap solvent.Snapshot) string {
	if snap.Result != nil && snap.Result.Data.Language != "" {
		return snap.Result.Data.Language
	}
	return "python"
}

func nextMode(mode solvent.ExecutionMode) solvent.ExecutionMode {
	switch mode {
	case solvent.ModeFast:
		return solvent.ModeVerified
	case solvent.ModeVerified:
		return solvent.ModeComprehensive
	default:
		return solvent.ModeFast
	}
}

// runCode executes code in the backend sandbox.
func runCode(backend solvent.Backend, code string) tea.Cmd {
	return func() tea.Msg {
		resp, err := backend.Execute(context.Background(), solvent.ExecuteRequest{Code: code})
		return ExecuteDoneMsg{Resp: resp, Err: err}
	}
}

// fetchSimple requests a beginner-level explanation.
func fetchSimple(backend solvent.Backend, problem, code string) tea.Cmd {
	return func() tea.Msg {
		resp, err := backend.ExplainSimple(context.Background(), solvent.ExplainSimpleRequest{
			ProblemText: problem,
			Code:        code,
			TargetLevel: solvent.LevelBeginner,
		})
		return ExplainDoneMsg{Resp: resp, Err: err}
	}
}

// fetchCodeNotes requests per-line commentary for a finished solution.
func fetchCodeNotes(backend solvent.Backend, problem, code string) tea.Cmd {
	return func() tea.Msg {
		notes, err := backend.ExplainCode(context.Background(), solvent.ExplainCodeRequest{
			ProblemText: problem,
			Code:        code,
		})
		return CodeNotesMsg{Notes: notes, Err: err}
	}
}
