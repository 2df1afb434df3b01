package src

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Protocol-Lattice/codescript/src/editor"
	"github.com/Protocol-Lattice/codescript/src/logging"
	"github.com/Protocol-Lattice/codescript/src/problem"
	"github.com/Protocol-Lattice/codescript/src/ui"
	"github.com/Protocol-Lattice/codescript/src/workspace"
)

// ProblemService is the pair of remote calls the workspace depends on.
type ProblemService interface {
	FetchRandomProblem(ctx context.Context) (problem.Problem, error)
	SubmitFeedback(ctx context.Context, req problem.FeedbackRequest) (problem.FeedbackResult, error)
}

// problemFetchedMsg carries the outcome of one fetch, tagged with the token
// the controller issued for it.
type problemFetchedMsg struct {
	seq     uint64
	problem problem.Problem
	err     error
}

// feedbackMsg carries the outcome of one submission.
type feedbackMsg struct {
	result problem.FeedbackResult
	err    error
}

type model struct {
	ctx     context.Context
	service ProblemService
	log     logging.Logger

	ctrl    *workspace.Controller
	store   *workspace.Store
	editor  *editor.Bridge
	surface editor.Surface

	pane    viewport.Model
	spinner spinner.Model
	help    help.Model
	keys    ui.KeyMap
	style   ui.Styles

	width  int
	height int
	status string

	// inflight tracks submissions so they can finish after the UI exits.
	inflight sync.WaitGroup
}

// NewModel builds the workspace. The editor is mounted on Init and must be
// released with Close once the program has exited.
func NewModel(ctx context.Context, svc ProblemService, log logging.Logger) *model {
	if log == nil {
		log = logging.Nop{}
	}
	st := ui.NewStyles()

	store := workspace.NewStore()
	bridge := editor.NewBridge(editor.DefaultTemplate)
	ctrl := workspace.NewController(store, bridge, editor.DefaultTemplate, log)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Thinking

	return &model{
		ctx:     ctx,
		service: svc,
		log:     log,
		ctrl:    ctrl,
		store:   store,
		editor:  bridge,
		surface: editor.NewTextareaSurface(),
		pane:    viewport.New(0, 0),
		spinner: s,
		help:    help.New(),
		keys:    ui.DefaultKeyMap(),
		style:   st,
	}
}

func (m *model) Init() tea.Cmd {
	m.editor.Mount(m.surface)
	seq := m.ctrl.Start()
	m.log.Info(m.ctx, "workspace started")
	m.refreshPane()
	return tea.Batch(m.fetchCmd(seq), m.editor.Focus(), m.spinner.Tick)
}

// Close unmounts the editor. It is safe to call more than once.
func (m *model) Close() {
	m.editor.Unmount()
}

// Drain waits up to timeout for in-flight submissions and reports whether
// they all finished.
func (m *model) Drain(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		m.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (m *model) busy() bool {
	st := m.ctrl.State()
	return st.Submitting || st.Fetching
}

func (m *model) uiState() ui.State {
	st := m.ctrl.State()
	mode := ui.ModeProblem
	if st.View == workspace.FeedbackView {
		mode = ui.ModeFeedback
	}
	status := m.status
	if err := m.ctrl.Err(); err != nil {
		status = err.Error()
	}
	return ui.State{
		Mode:       mode,
		Width:      m.width,
		Height:     m.height,
		Problem:    m.store.Problem(),
		Feedback:   m.store.Feedback(),
		Submitting: st.Submitting,
		Fetching:   st.Fetching,
		Status:     status,
		StatusErr:  m.ctrl.Err() != nil,
		EditorView: m.editor.View(),
		Pane:       m.pane,
		Spinner:    m.spinner,
		Help:       m.help,
		Keys:       m.keys,
	}
}

// refreshPane re-renders the left pane into the viewport.
func (m *model) refreshPane() {
	m.pane.SetContent(ui.PaneContent(m.uiState(), m.style, m.pane.Width))
}
