package editor

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Surface is an editable text widget that reports document changes.
type Surface interface {
	SetValue(string)
	Value() string
	Update(tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
	SetSize(width, height int)
	// OnChange registers a listener called with the full document each time
	// it changes.
	OnChange(func(string))
	// Close releases the widget. Further calls are no-ops.
	Close()
}

const indent = "    "

// TextareaSurface adapts a bubbles textarea to Surface.
type TextareaSurface struct {
	ta        textarea.Model
	last      string
	listeners []func(string)
	closed    bool
}

var _ Surface = (*TextareaSurface)(nil)

// NewTextareaSurface builds an unbounded, line-numbered textarea.
func NewTextareaSurface() *TextareaSurface {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = "┃ "
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(lipgloss.Color("#1E1B2E"))
	return &TextareaSurface{ta: ta}
}

func (s *TextareaSurface) SetValue(v string) {
	if s.closed {
		return
	}
	s.ta.SetValue(v)
	s.notify()
}

func (s *TextareaSurface) Value() string { return s.ta.Value() }

func (s *TextareaSurface) Update(msg tea.Msg) tea.Cmd {
	if s.closed {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyTab && s.ta.Focused() {
		s.ta.InsertString(indent)
		s.notify()
		return nil
	}
	var cmd tea.Cmd
	s.ta, cmd = s.ta.Update(msg)
	s.notify()
	return cmd
}

func (s *TextareaSurface) View() string {
	if s.closed {
		return ""
	}
	return s.ta.View()
}

func (s *TextareaSurface) Focus() tea.Cmd {
	if s.closed {
		return nil
	}
	return s.ta.Focus()
}

func (s *TextareaSurface) Blur() { s.ta.Blur() }

func (s *TextareaSurface) SetSize(width, height int) {
	if width > 0 {
		s.ta.SetWidth(width)
	}
	if height > 0 {
		s.ta.SetHeight(height)
	}
}

func (s *TextareaSurface) OnChange(fn func(string)) {
	if s.closed || fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

func (s *TextareaSurface) Close() {
	if s.closed {
		return
	}
	s.ta.Blur()
	s.ta.Reset()
	s.listeners = nil
	s.closed = true
}

// notify fires listeners only when the document differs from the last
// notified value, so cursor moves and blinks stay silent.
func (s *TextareaSurface) notify() {
	v := s.ta.Value()
	if v == s.last {
		return
	}
	s.last = v
	for _, fn := range s.listeners {
		fn(v)
	}
}
