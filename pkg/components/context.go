// Package components is a themed component kit for terminal UIs: buttons,
// cards, alerts, badges and dividers that read every color through the
// theming core rather than from concrete palettes.
//
// Rendering is context-driven. A RenderContext carries the scoped theme
// handle; deriving a context with WithTheme shadows the outer scope, which
// gives provider nesting its innermost-wins semantics with no extra
// machinery.
package components

import (
	"github.com/glintui/glint/pkg/theme"
)

// Constraints bounds the width a component may occupy. A zero MaxWidth
// means unbounded.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{}
}

// WithWidth fixes the width exactly.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width}
}

// Clamp applies the constraints to a measured width.
func (c Constraints) Clamp(width int) int {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth > 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	return width
}

// RenderContext provides the scoped theme and layout bounds to components
// during rendering. Contexts flow down a render tree explicitly; there is no
// global theme state.
type RenderContext struct {
	Theme       theme.Handle
	Constraints Constraints
}

// DefaultContext returns a context scoped to the system-adaptive theme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: theme.Default(), Constraints: Unconstrained()}
}

// NewContext builds a context from a theme provider's scope.
func NewContext(p theme.Provider) RenderContext {
	return RenderContext{Theme: p.Handle(), Constraints: Unconstrained()}
}

// WithTheme returns a derived context scoped to the given theme. The
// derived scope shadows this one for everything rendered beneath it.
func (r RenderContext) WithTheme(t theme.Theme) RenderContext {
	r.Theme = theme.NewHandle(t)
	return r
}

// WithProvider returns a derived context scoped to the provider's theme.
func (r RenderContext) WithProvider(p theme.Provider) RenderContext {
	r.Theme = p.Handle()
	return r
}

// WithConstraints returns a derived context with the given layout bounds.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// handle returns the scoped theme, guarding against zero contexts.
func (r RenderContext) handle() theme.Handle {
	if !r.Theme.Valid() {
		return theme.Default()
	}
	return r.Theme
}
