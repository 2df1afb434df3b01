package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("#AD8CFF")
	colorTeal   = lipgloss.Color("#00E6B8")
	colorGreen  = lipgloss.Color("#3DDC97")
	colorOrange = lipgloss.Color("#FFA94D")
	colorRed    = lipgloss.Color("#FF5C5C")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorGrey   = lipgloss.Color("#999999")
	colorDim    = lipgloss.Color("#777777")
)

type Styles struct {
	Header      lipgloss.Style
	Subtitle    lipgloss.Style
	Title       lipgloss.Style
	Section     lipgloss.Style
	Label       lipgloss.Style
	Pane        lipgloss.Style
	EditorPane  lipgloss.Style
	Button      lipgloss.Style
	ButtonOff   lipgloss.Style
	ButtonOn    lipgloss.Style
	Help        lipgloss.Style
	Footer      lipgloss.Style
	Accent      lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Thinking    lipgloss.Style
	Subtle      lipgloss.Style
	Link        lipgloss.Style
	Difficulty  map[string]lipgloss.Style
	ScoreColors map[ScoreTier]lipgloss.Color
}

func NewStyles() Styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(colorGrey).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true),

		Section: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorAccent).
			PaddingLeft(1).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),

		EditorPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorAccent).
			Padding(0, 1).
			MarginRight(1),

		ButtonOff: lipgloss.NewStyle().
			Foreground(colorDim).
			Faint(true).
			Padding(0, 1).
			MarginRight(1),

		ButtonOn: lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorTeal).
			Bold(true).
			Padding(0, 1).
			MarginRight(1),

		Help: lipgloss.NewStyle().
			Foreground(colorDim),

		Footer: lipgloss.NewStyle().
			Foreground(colorDim).
			Faint(true),

		Accent: lipgloss.NewStyle().
			Foreground(colorAccent),

		Error: lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true),

		Thinking: lipgloss.NewStyle().
			Foreground(colorGreen),

		Subtle: lipgloss.NewStyle().
			Foreground(colorGrey),

		Link: lipgloss.NewStyle().
			Foreground(colorTeal).
			Underline(true),

		Difficulty: map[string]lipgloss.Style{
			"easy":    badge.Foreground(colorGreen),
			"medium":  badge.Foreground(colorOrange),
			"hard":    badge.Foreground(colorRed),
			"unknown": badge.Foreground(colorGrey),
		},

		ScoreColors: map[ScoreTier]lipgloss.Color{
			TierNone:   colorWhite,
			TierLow:    colorRed,
			TierMedium: colorOrange,
			TierHigh:   colorGreen,
		},
	}
}
