package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/pkg/components"
	"github.com/glintui/glint/pkg/theme"
)

// View renders the choice list next to a preview styled with the highlighted
// theme, so the user sees each candidate before committing to it.
func (m Model) View() string {
	if len(m.choices) == 0 {
		return "no themes available\n"
	}

	highlighted := m.choices[m.cursor]
	st := newStyles(highlighted.handle)

	var rows []string
	for i, c := range m.choices {
		label := c.label
		if c.isCustom() {
			label += " (custom)"
		}
		if i == m.cursor {
			rows = append(rows, st.selectedRow.Render("› "+label))
			continue
		}
		rows = append(rows, st.row.Render("  "+label))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	preview := m.renderPreview(highlighted)

	body := lipgloss.JoinHorizontal(lipgloss.Top, st.list.Render(list), preview)

	sections := []string{
		st.title.Render("Choose a theme"),
		body,
		st.help.Render("↑/↓ move • enter apply • q quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderPreview(c choice) string {
	ctx := components.NewContext(theme.NewProvider(c.handle))
	if m.width > 40 {
		ctx = ctx.WithConstraints(components.WithWidth(m.width - 24))
	}

	card := components.NewCard("Preview", "The quick brown fox jumps over the lazy dog.").
		WithFooter(c.label)

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Top,
		components.PrimaryButton("Confirm").ViewWithContext(ctx),
		" ",
		components.SecondaryButton("Cancel").ViewWithContext(ctx),
	)

	alert := components.InfoAlert("Press enter to apply this theme.").ViewWithContext(ctx)

	parts := []string{
		card.ViewWithContext(ctx),
		buttons,
		alert,
	}
	return strings.Join(parts, "\n")
}
