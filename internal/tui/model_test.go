package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/pkg/theme"
)

func newTestManager(t *testing.T) *theme.Manager {
	t.Helper()
	return theme.NewManager(theme.Options{
		Detector: func() bool { return true },
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPickerListsModesAndCustomThemes(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	require.NoError(t, m.RegisterTheme(theme.NewHandle(namedTheme{"brand"})))

	picker := NewModel(m)
	require.Len(t, picker.choices, 4)
	require.Equal(t, "Light", picker.choices[0].label)
	require.Equal(t, "Dark", picker.choices[1].label)
	require.Equal(t, "System", picker.choices[2].label)
	require.Equal(t, "brand", picker.choices[3].label)
}

func TestPickerCursorStartsOnCurrentSelection(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	m.SetMode(theme.ModeDark)

	picker := NewModel(m)
	require.Equal(t, "Dark", picker.Selected())
}

func TestPickerNavigation(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	picker := NewModel(m)
	require.Equal(t, "System", picker.Selected())

	next, _ := picker.Update(keyMsg("k"))
	picker = next.(Model)
	require.Equal(t, "Dark", picker.Selected())

	next, _ = picker.Update(keyMsg("j"))
	picker = next.(Model)
	next, _ = picker.Update(keyMsg("j"))
	picker = next.(Model)
	// Cursor stops at the last row.
	require.Equal(t, "System", picker.Selected())
}

func TestPickerAppliesModeOnEnter(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	picker := NewModel(m)

	next, _ := picker.Update(keyMsg("k"))
	picker = next.(Model)
	next, cmd := picker.Update(keyMsg("enter"))
	picker = next.(Model)

	require.NotNil(t, cmd)
	require.True(t, picker.Applied())
	require.NoError(t, picker.Err())
	require.Equal(t, theme.ModeDark, m.Mode())
}

func TestPickerAppliesCustomThemeOnEnter(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	require.NoError(t, m.RegisterTheme(theme.NewHandle(namedTheme{"brand"})))

	picker := NewModel(m)
	for picker.Selected() != "brand" {
		next, _ := picker.Update(keyMsg("j"))
		picker = next.(Model)
	}

	next, _ := picker.Update(keyMsg("enter"))
	picker = next.(Model)

	require.True(t, picker.Applied())
	require.Equal(t, "brand", m.Current().Name())
}

func TestPickerQuitWithoutApplying(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	picker := NewModel(m)

	next, cmd := picker.Update(keyMsg("esc"))
	picker = next.(Model)

	require.NotNil(t, cmd)
	require.False(t, picker.Applied())
	require.Equal(t, theme.ModeSystem, m.Mode())
}

func TestPickerViewShowsChoicesAndPreview(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	picker := NewModel(m)

	next, _ := picker.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	picker = next.(Model)

	out := picker.View()
	require.Contains(t, out, "Choose a theme")
	require.Contains(t, out, "Light")
	require.Contains(t, out, "Dark")
	require.Contains(t, out, "System")
	require.Contains(t, out, "Preview")
	require.Contains(t, out, "Confirm")
	require.True(t, strings.Contains(out, "enter apply"))
}

// namedTheme is a minimal custom theme for registry tests.
type namedTheme struct {
	name string
}

func (n namedTheme) Name() string                      { return n.name }
func (n namedTheme) PreferredMode() (theme.Mode, bool) { return theme.ModeDark, true }

func (n namedTheme) Primary() lipgloss.TerminalColor       { return lipgloss.Color("#7c3aed") }
func (n namedTheme) Secondary() lipgloss.TerminalColor     { return lipgloss.Color("#db2777") }
func (n namedTheme) Background() lipgloss.TerminalColor    { return lipgloss.Color("#1e1b4b") }
func (n namedTheme) Surface() lipgloss.TerminalColor       { return lipgloss.Color("#312e81") }
func (n namedTheme) Success() lipgloss.TerminalColor       { return lipgloss.Color("#22c55e") }
func (n namedTheme) Warning() lipgloss.TerminalColor       { return lipgloss.Color("#eab308") }
func (n namedTheme) Error() lipgloss.TerminalColor         { return lipgloss.Color("#ef4444") }
func (n namedTheme) Info() lipgloss.TerminalColor          { return lipgloss.Color("#06b6d4") }
func (n namedTheme) TextPrimary() lipgloss.TerminalColor   { return lipgloss.Color("#e0e7ff") }
func (n namedTheme) TextSecondary() lipgloss.TerminalColor { return lipgloss.Color("#a5b4fc") }
func (n namedTheme) TextTertiary() lipgloss.TerminalColor  { return lipgloss.Color("#6366f1") }
func (n namedTheme) Border() lipgloss.TerminalColor        { return lipgloss.Color("#4338ca") }
func (n namedTheme) Divider() lipgloss.TerminalColor       { return lipgloss.Color("#3730a3") }
