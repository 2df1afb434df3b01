package src

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Protocol-Lattice/codescript/src/editor"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			view := m.ctrl.Toggle()
			m.log.Info(m.ctx, "view toggled", "view", view.String())
			m.refreshPane()
			m.pane.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Shuffle):
			seq, ok := m.ctrl.Shuffle()
			if !ok {
				return m, nil
			}
			m.status = ""
			m.refreshPane()
			m.pane.GotoTop()
			return m, tea.Batch(m.fetchCmd(seq), m.spinner.Tick)

		case key.Matches(msg, m.keys.Submit):
			req, ok := m.ctrl.BeginSubmit()
			if !ok {
				return m, nil
			}
			m.status = ""
			m.log.Info(m.ctx, "submitting", "title", req.ProblemData.Title, "bytes", len(req.UserSubmission))
			return m, tea.Batch(m.submitCmd(req), m.spinner.Tick)

		case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.pane, cmd = m.pane.Update(msg)
			return m, cmd
		}

	case problemFetchedMsg:
		if m.ctrl.FinishFetch(m.ctx, msg.seq, msg.problem, msg.err) {
			m.status = ""
			m.pane.GotoTop()
		}
		m.refreshPane()
		return m, nil

	case feedbackMsg:
		if m.ctrl.FinishSubmit(m.ctx, msg.result, msg.err) {
			m.status = fmt.Sprintf("✅ feedback received (score %d)", msg.result.Score)
			m.pane.GotoTop()
		}
		m.refreshPane()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Everything else belongs to the editor: keystrokes, paste, cursor blink.
	return m, m.editor.Update(msg)
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	paneWidth, editorWidth, bodyHeight := m.style.Layout(width, height)
	headerHeight := lipgloss.Height(m.style.Subtle.Width(editorWidth).Render(editor.Header))

	m.pane.Width = paneWidth
	m.pane.Height = bodyHeight
	m.editor.SetSize(editorWidth, max(bodyHeight-headerHeight, 1))
	m.refreshPane()
}
