package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates picker state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			m.err = m.apply(m.choices[m.cursor])
			m.applied = m.err == nil
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) apply(c choice) error {
	if c.isCustom() {
		h, ok := m.manager.ThemeNamed(c.custom)
		if !ok {
			// Unregistered between construction and selection; nothing to do.
			return nil
		}
		return m.manager.SetTheme(h)
	}
	m.manager.SetMode(c.mode)
	return nil
}
