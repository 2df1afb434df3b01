// Package editor owns the workspace's single editable text surface and
// exposes its latest contents to the submission path.
package editor

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTemplate is the starting document: a block comment for free-form
// notes, with code expected below it.
const DefaultTemplate = "\"\"\"\n\n\"\"\""

// Header is the hint shown above the editor.
const Header = "Write your approach in the comment block or code your solution in Python below it."

// Bridge mounts one Surface and mirrors its document into a holder through
// change notifications. Contents is a pull accessor on that holder.
type Bridge struct {
	mu       sync.RWMutex
	contents string

	surface  Surface
	template string
}

// NewBridge returns an unmounted bridge whose holder starts at template.
func NewBridge(template string) *Bridge {
	return &Bridge{contents: template, template: template}
}

// Mount binds s and loads the template into it. It does nothing if a surface
// is already mounted and reports whether s was taken.
func (b *Bridge) Mount(s Surface) bool {
	if b.surface != nil || s == nil {
		return false
	}
	b.surface = s
	s.OnChange(b.record)
	s.SetValue(b.Contents())
	return true
}

// Mounted reports whether a surface is bound.
func (b *Bridge) Mounted() bool { return b.surface != nil }

// Contents returns the latest full document.
func (b *Bridge) Contents() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.contents
}

// Reset replaces the whole document with template.
func (b *Bridge) Reset(template string) {
	b.record(template)
	if b.surface != nil {
		b.surface.SetValue(template)
	}
}

// Unmount closes the surface. Safe to call repeatedly.
func (b *Bridge) Unmount() {
	if b.surface == nil {
		return
	}
	b.surface.Close()
	b.surface = nil
}

// Update forwards msg to the surface.
func (b *Bridge) Update(msg tea.Msg) tea.Cmd {
	if b.surface == nil {
		return nil
	}
	return b.surface.Update(msg)
}

// View renders the surface, or nothing when unmounted.
func (b *Bridge) View() string {
	if b.surface == nil {
		return ""
	}
	return b.surface.View()
}

// Focus gives the surface keyboard focus.
func (b *Bridge) Focus() tea.Cmd {
	if b.surface == nil {
		return nil
	}
	return b.surface.Focus()
}

// SetSize resizes the surface.
func (b *Bridge) SetSize(width, height int) {
	if b.surface != nil {
		b.surface.SetSize(width, height)
	}
}

// Template returns the document loaded on mount.
func (b *Bridge) Template() string { return b.template }

func (b *Bridge) record(v string) {
	b.mu.Lock()
	b.contents = v
	b.mu.Unlock()
}
