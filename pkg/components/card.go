package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Card groups a title, body and optional footer on an elevated surface.
type Card struct {
	BaseComponent
	title  string
	body   string
	footer string
}

// NewCard creates a card with the given title and body.
func NewCard(title, body string) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		title:         title,
		body:          body,
	}
}

// View renders the card under the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the scoped theme.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	h := ctx.handle()

	sections := make([]string, 0, 3)
	if c.title != "" {
		sections = append(sections, Style(lipgloss.NewStyle(), h,
			Foreground(RolePrimary), Bold(),
		).Render(c.title))
	}
	if c.body != "" {
		sections = append(sections, Style(lipgloss.NewStyle(), h,
			Foreground(RoleOnSurface),
		).Render(c.body))
	}
	if c.footer != "" {
		sections = append(sections, Style(lipgloss.NewStyle(), h,
			Foreground(RoleTextTertiary), Faint(),
		).Render(c.footer))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	box := Style(c.ComputeStyle(h), h,
		Fill(RoleSurfaceElevated, RoleOnSurface),
		Bordered(lipgloss.RoundedBorder(), RoleBorder),
		Padding(1),
	)
	if w := ctx.Constraints.Clamp(lipgloss.Width(content)); w > 0 {
		box = box.Width(w)
	}

	return box.Render(content)
}

// WithFooter adds a footer line.
func (c *Card) WithFooter(footer string) *Card {
	c.footer = footer
	return c
}

// WithAppliers appends theme-aware style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Title returns the card title.
func (c *Card) Title() string { return c.title }
