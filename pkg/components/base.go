package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/pkg/theme"
)

// Renderable is anything that can draw itself with a render context.
type Renderable interface {
	View() string
	ViewWithContext(ctx RenderContext) string
}

// BaseComponent carries the style state shared by every component: a raw
// base style plus a chain of theme-aware modifiers resolved at render time.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent returns an empty base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the component's style against a theme handle.
func (b *BaseComponent) ComputeStyle(h theme.Handle) lipgloss.Style {
	return Style(b.style, h, b.appliers...)
}

// SetStyle replaces the raw base style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends theme-aware modifiers. A copy of the chain is made so
// components sharing a prefix never mutate each other's modifiers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	chain := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(chain, b.appliers)
	b.appliers = append(chain, appliers...)
}
