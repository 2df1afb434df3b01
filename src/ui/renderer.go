package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Protocol-Lattice/codescript/src/editor"
	"github.com/Protocol-Lattice/codescript/src/problem"
)

const Logo = "⟨/⟩ CodeScript"

// chromeLines is the height of everything outside the two panes: header,
// toolbar, status line and footer.
const chromeLines = 4

// Render generates the full UI string based on the provided state.
func Render(s State, styles Styles) string {
	header := renderHeader(styles)
	toolbar := renderToolbar(s, styles)
	body := renderBody(s, styles)
	status := renderStatus(s, styles)
	footer := renderFooter(s, styles)

	return lipgloss.JoinVertical(lipgloss.Left, header, toolbar, body, status, footer)
}

// Layout returns the inner sizes of the left pane, the editor and the shared
// body height for a terminal of width x height.
func (st Styles) Layout(width, height int) (paneWidth, editorWidth, bodyHeight int) {
	left := width / 2
	right := width - left
	paneWidth = max(left-st.Pane.GetHorizontalFrameSize(), 10)
	editorWidth = max(right-st.EditorPane.GetHorizontalFrameSize(), 10)
	bodyHeight = max(height-chromeLines-st.Pane.GetVerticalFrameSize(), 3)
	return paneWidth, editorWidth, bodyHeight
}

func renderHeader(styles Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Header.Render(Logo),
		styles.Subtitle.Render("practice problems · instant feedback"),
	)
}

func renderToolbar(s State, styles Styles) string {
	toggle := "◧ Problem"
	if s.Mode == ModeFeedback {
		toggle = "◨ Feedback"
	}

	shuffle := styles.Button.Render("⤮ Shuffle")
	submit := styles.ButtonOn.Render("▶ Submit")
	if s.Submitting {
		shuffle = styles.ButtonOff.Render("⤮ Shuffle")
		submit = styles.ButtonOff.Render(fmt.Sprintf("%s Submitting", s.Spinner.View()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Button.Render(toggle),
		shuffle,
		submit,
	)
}

func renderBody(s State, styles Styles) string {
	paneWidth, editorWidth, bodyHeight := styles.Layout(s.Width, s.Height)

	left := styles.Pane.
		Width(paneWidth + styles.Pane.GetHorizontalPadding()).
		Height(bodyHeight).
		Render(s.Pane.View())

	right := styles.EditorPane.
		Width(editorWidth + styles.EditorPane.GetHorizontalPadding()).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Subtle.Width(editorWidth).Render(editor.Header),
			s.EditorView,
		))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func renderStatus(s State, styles Styles) string {
	switch {
	case s.Status != "" && s.StatusErr:
		return styles.Error.Render("❌ " + s.Status)
	case s.Submitting:
		return styles.Thinking.Render(fmt.Sprintf("%s scoring your submission", s.Spinner.View()))
	case s.Fetching:
		return styles.Thinking.Render(fmt.Sprintf("%s loading problem", s.Spinner.View()))
	case s.Status != "":
		return styles.Success.Render(s.Status)
	default:
		return ""
	}
}

func renderFooter(s State, styles Styles) string {
	return styles.Footer.Render(s.Help.View(s.Keys))
}

// PaneContent renders the left pane for the current mode.
func PaneContent(s State, styles Styles, width int) string {
	if s.Mode == ModeFeedback {
		return FeedbackContent(s.Problem, s.Feedback, styles, width)
	}
	return ProblemContent(s.Problem, styles, width)
}

// ProblemContent renders the problem statement.
func ProblemContent(p problem.Problem, styles Styles, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	title := p.Title
	if title == "" {
		title = "…"
	}
	lines := []string{
		styles.Title.Render(title),
		DifficultyBadge(p.Difficulty, styles),
		"",
		wrap.Render(problem.PlainText(p.Description)),
	}

	if len(p.Constraints) > 0 {
		var cs []string
		cs = append(cs, styles.Label.Render("Constraints:"))
		for _, c := range p.Constraints {
			cs = append(cs, wrap.Render("• "+c))
		}
		lines = append(lines, styles.Section.Render(strings.Join(cs, "\n")))
	}

	for i, ex := range p.Examples {
		lines = append(lines, styles.Section.Render(renderExample(i, ex, styles, width-2)))
	}

	return strings.Join(lines, "\n")
}

func renderExample(i int, ex problem.Example, styles Styles, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var out []string
	out = append(out, styles.Label.Render(fmt.Sprintf("Example %d:", i+1)))
	if ex.ImageURL != "" {
		out = append(out, "Image: "+styles.Link.Render(ex.ImageURL))
	}
	out = append(out,
		wrap.Render("Input: "+ex.Input),
		wrap.Render("Output: "+ex.Output),
	)
	if ex.Explanation != "" {
		out = append(out, wrap.Render(ex.Explanation))
	}
	return strings.Join(out, "\n")
}

// DifficultyBadge renders the difficulty label in its level colour. An empty
// difficulty renders nothing.
func DifficultyBadge(d problem.Difficulty, styles Styles) string {
	if d == "" {
		return ""
	}
	style, ok := styles.Difficulty[strings.ToLower(string(d))]
	if !ok {
		style = styles.Difficulty["unknown"]
	}
	return style.Render(string(d))
}

// FeedbackContent renders the scoring service's verdict.
func FeedbackContent(p problem.Problem, fb problem.FeedbackResult, styles Styles, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	lines := []string{
		styles.Title.Render(p.Title),
		"",
		wrap.Render(fb.Analysis),
	}

	if len(fb.Suggestions) != 0 {
		var ss []string
		ss = append(ss, styles.Label.Render("Suggestions:"))
		for _, s := range fb.Suggestions {
			ss = append(ss, wrap.Render("• "+s))
		}
		lines = append(lines, styles.Section.Render(strings.Join(ss, "\n")))
	}

	lines = append(lines, "", ScoreBar(fb.Score, styles, width))
	return strings.Join(lines, "\n")
}

// ScoreBar renders the score indicator coloured by tier.
func ScoreBar(score int, styles Styles, width int) string {
	tier := TierForScore(score)
	label := styles.Subtle.Render("Score: not submitted")
	if tier != TierNone {
		label = styles.Label.Render(fmt.Sprintf("Score: %d (%s)", score, tier))
	}
	bar := lipgloss.NewStyle().
		Background(styles.ScoreColors[tier]).
		Width(max(width, 1)).
		Render("")
	return lipgloss.JoinVertical(lipgloss.Left, label, bar)
}
