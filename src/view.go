package src

import "github.com/Protocol-Lattice/codescript/src/ui"

func (m *model) View() string {
	if m.width == 0 {
		return "Loading workspace…"
	}
	return ui.Render(m.uiState(), m.style)
}
