package src

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Protocol-Lattice/codescript/src/problem"
)

func (m *model) fetchCmd(seq uint64) tea.Cmd {
	ctx, svc := m.ctx, m.service
	return func() tea.Msg {
		p, err := svc.FetchRandomProblem(ctx)
		return problemFetchedMsg{seq: seq, problem: p, err: err}
	}
}

// submitCmd starts posting req right away, detached from the program
// context, so a quit neither aborts a submission on the wire nor strands one
// that Bubble Tea never got round to running. The returned command only
// waits for the result.
func (m *model) submitCmd(req problem.FeedbackRequest) tea.Cmd {
	ctx, svc := context.WithoutCancel(m.ctx), m.service
	result := make(chan feedbackMsg, 1)

	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		r, err := svc.SubmitFeedback(ctx, req)
		result <- feedbackMsg{result: r, err: err}
	}()

	return func() tea.Msg {
		return <-result
	}
}
