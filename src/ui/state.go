package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Protocol-Lattice/codescript/src/problem"
)

// Mode is the left-pane display mode.
type Mode int

const (
	ModeProblem Mode = iota
	ModeFeedback
)

// State contains all the data required to render the UI.
// This decouples the renderer from the main application logic.
type State struct {
	Mode       Mode
	Width      int
	Height     int
	Problem    problem.Problem
	Feedback   problem.FeedbackResult
	Submitting bool
	Fetching   bool
	Status     string
	StatusErr  bool

	// EditorView is the already rendered editor surface.
	EditorView string

	// Bubble Tea models
	Pane    viewport.Model
	Spinner spinner.Model
	Help    help.Model
	Keys    KeyMap
}
