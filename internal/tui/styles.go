package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/pkg/theme"
)

// styles holds the picker chrome, derived from the highlighted theme so the
// frame previews alongside the components.
type styles struct {
	title       lipgloss.Style
	list        lipgloss.Style
	row         lipgloss.Style
	selectedRow lipgloss.Style
	help        lipgloss.Style
}

func newStyles(h theme.Handle) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(h.Primary()).
			MarginBottom(1),
		list: lipgloss.NewStyle().
			MarginRight(2).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(h.Divider()),
		row: lipgloss.NewStyle().
			Foreground(h.TextSecondary()),
		selectedRow: lipgloss.NewStyle().
			Bold(true).
			Foreground(h.Primary()),
		help: lipgloss.NewStyle().
			Faint(true).
			Foreground(h.TextTertiary()).
			MarginTop(1),
	}
}
