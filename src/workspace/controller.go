package workspace

import (
	"context"

	"github.com/Protocol-Lattice/codescript/src/logging"
	"github.com/Protocol-Lattice/codescript/src/problem"
)

// View is the left-pane display mode.
type View int

const (
	ProblemView View = iota
	FeedbackView
)

func (v View) String() string {
	switch v {
	case ProblemView:
		return "problem"
	case FeedbackView:
		return "feedback"
	default:
		return "unknown"
	}
}

// Editor is what the controller needs from the editor bridge.
type Editor interface {
	Contents() string
	Reset(template string)
}

// State is a snapshot of the controller's flags.
type State struct {
	View       View
	Submitting bool
	Fetching   bool
	Started    bool
}

// Controller maps user actions to state transitions. All methods are meant
// to be called from the single UI goroutine; network calls are issued by the
// caller and reported back through FinishFetch and FinishSubmit.
type Controller struct {
	store    *Store
	editor   Editor
	template string
	log      logging.Logger

	state    State
	fetchSeq uint64
	lastErr  error
}

// NewController wires a controller to its store and editor.
func NewController(store *Store, editor Editor, template string, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop{}
	}
	return &Controller{
		store:    store,
		editor:   editor,
		template: template,
		log:      log,
		state:    State{View: ProblemView},
	}
}

// Store returns the backing store.
func (c *Controller) Store() *Store { return c.store }

// State returns the current flags.
func (c *Controller) State() State { return c.state }

// Err returns the error of the last failed call, cleared by the next
// successful one.
func (c *Controller) Err() error { return c.lastErr }

// Start enters the problem view and begins the first fetch. The returned
// token must be passed to FinishFetch.
func (c *Controller) Start() uint64 {
	c.state.Started = true
	c.state.View = ProblemView
	return c.beginFetch()
}

// Toggle flips between the problem and feedback views.
func (c *Controller) Toggle() View {
	if c.state.View == ProblemView {
		c.state.View = FeedbackView
	} else {
		c.state.View = ProblemView
	}
	return c.state.View
}

// Shuffle returns to the problem view with fresh feedback and a reset
// editor, and begins a fetch. It is refused while a submission is in
// flight.
func (c *Controller) Shuffle() (uint64, bool) {
	if c.state.Submitting {
		return 0, false
	}
	seq := c.beginFetch()
	c.editor.Reset(c.template)
	c.state.View = ProblemView
	c.store.ResetFeedback()
	return seq, true
}

func (c *Controller) beginFetch() uint64 {
	c.fetchSeq++
	c.state.Fetching = true
	return c.fetchSeq
}

// FinishFetch applies the outcome of fetch seq. Results of superseded
// fetches are dropped; a failure leaves the displayed problem untouched.
func (c *Controller) FinishFetch(ctx context.Context, seq uint64, p problem.Problem, err error) bool {
	if seq != c.fetchSeq {
		c.log.Info(ctx, "dropping stale problem fetch", "seq", seq, "latest", c.fetchSeq)
		return false
	}
	c.state.Fetching = false
	if err != nil {
		c.lastErr = err
		c.log.Error(ctx, "fetch problem failed", "error", err)
		return false
	}
	c.lastErr = nil
	c.store.ReplaceProblem(p)
	c.log.Info(ctx, "problem loaded", "title", p.Title, "difficulty", string(p.Difficulty), "examples", len(p.Examples))
	return true
}

// BeginSubmit marks a submission in flight and returns its request. While
// another submission is outstanding it does nothing and returns false.
func (c *Controller) BeginSubmit() (problem.FeedbackRequest, bool) {
	if c.state.Submitting {
		return problem.FeedbackRequest{}, false
	}
	c.state.Submitting = true
	return problem.NewFeedbackRequest(c.store.Problem(), c.editor.Contents()), true
}

// FinishSubmit clears the in-flight flag and, on success, stores the result
// and shows the feedback view.
func (c *Controller) FinishSubmit(ctx context.Context, r problem.FeedbackResult, err error) bool {
	c.state.Submitting = false
	if err != nil {
		c.lastErr = err
		c.log.Error(ctx, "submit feedback failed", "error", err)
		return false
	}
	c.lastErr = nil
	c.store.SetFeedback(r)
	c.state.View = FeedbackView
	c.log.Info(ctx, "feedback received", "score", r.Score, "suggestions", len(r.Suggestions))
	return true
}
