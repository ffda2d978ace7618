// Package tui implements the interactive theme picker. It lists the built-in
// modes and any registered custom themes, renders a live preview styled with
// the highlighted theme, and applies the selection through the manager when
// the user confirms.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/pkg/theme"
)

// choice is a selectable row in the picker: either a mode or a custom theme.
type choice struct {
	label  string
	mode   theme.Mode
	custom string
	handle theme.Handle
}

func (c choice) isCustom() bool { return c.custom != "" }

// Model contains the Bubbletea state for the theme picker.
type Model struct {
	manager *theme.Manager
	keys    keyMap
	choices []choice
	cursor  int
	width   int
	applied bool
	err     error
}

// NewModel constructs a picker over the manager's built-in modes and
// registered custom themes. The cursor starts on the current selection.
func NewModel(manager *theme.Manager) Model {
	m := Model{
		manager: manager,
		keys:    defaultKeyMap(),
	}

	m.choices = []choice{
		{label: "Light", mode: theme.ModeLight, handle: theme.NewHandle(theme.Light())},
		{label: "Dark", mode: theme.ModeDark, handle: theme.NewHandle(theme.Dark())},
		{label: "System", mode: theme.ModeSystem, handle: theme.NewHandle(theme.System())},
	}
	for _, name := range manager.ThemeNames() {
		if h, ok := manager.ThemeNamed(name); ok {
			m.choices = append(m.choices, choice{label: name, custom: name, handle: h})
		}
	}

	m.cursor = m.initialCursor()
	return m
}

func (m Model) initialCursor() int {
	sel := m.manager.Selection()
	if sel.CustomThemeName != "" {
		for i, c := range m.choices {
			if c.custom == sel.CustomThemeName {
				return i
			}
		}
	}
	for i, c := range m.choices {
		if !c.isCustom() && c.mode == sel.Mode {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Applied reports whether the user confirmed a selection before exiting.
func (m Model) Applied() bool {
	return m.applied
}

// Err returns the error from applying the selection, if any.
func (m Model) Err() error {
	return m.err
}

// Selected returns the label of the currently highlighted choice.
func (m Model) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.choices) {
		return ""
	}
	return m.choices[m.cursor].label
}
