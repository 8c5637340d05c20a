package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/postview/internal/view"
)

// Run starts the table on the alternate screen and blocks until the user
// quits. It returns the final state; nothing is persisted.
func Run(opt Options) (view.State, error) {
	m := New(opt)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	final, err := p.Run()
	if err != nil {
		return m.state, err
	}
	if fm, ok := final.(Model); ok {
		return fm.state, nil
	}
	return m.state, nil
}
