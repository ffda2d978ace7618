package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider draws a horizontal rule in the theme's divider color, optionally
// with a centered label.
type Divider struct {
	BaseComponent
	width int
	label string
}

// NewDivider creates a divider of the given width.
func NewDivider(width int) *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), width: width}
}

// View renders the divider under the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with the scoped theme.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	h := ctx.handle()
	width := ctx.Constraints.Clamp(d.width)
	if width <= 0 {
		width = d.width
	}

	line := Style(d.ComputeStyle(h), h, Foreground(RoleDivider))

	if d.label == "" {
		return line.Render(strings.Repeat("─", max(width, 1)))
	}

	label := Style(lipgloss.NewStyle(), h, Foreground(RoleTextSecondary)).
		Render(" " + d.label + " ")
	side := (width - lipgloss.Width(label)) / 2
	if side < 1 {
		side = 1
	}
	rule := strings.Repeat("─", side)
	return lipgloss.JoinHorizontal(lipgloss.Center, line.Render(rule), label, line.Render(rule))
}

// WithLabel centers a label in the rule.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}
