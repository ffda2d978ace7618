package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a visual button with semantic variants and focus/disabled states.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	focused  bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button under the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the scoped theme.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	h := ctx.handle()
	bg, fg := b.variant.fill()

	style := Style(b.ComputeStyle(h), h,
		Fill(bg, fg),
		PaddingX(2),
	)

	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Underline(true)
	}

	return style.Render(b.label)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocus sets the focused state.
func (b *Button) WithFocus(focused bool) *Button {
	b.focused = focused
	return b
}

// WithStyle replaces the raw base style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers appends theme-aware style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// IsDisabled reports the disabled state.
func (b *Button) IsDisabled() bool { return b.disabled }

// Convenience constructors.

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// SuccessButton creates a success button.
func SuccessButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSuccess)
}

// ErrorButton creates an error button.
func ErrorButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantError)
}

// MutedButton creates a muted button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}
