package components

// Badge is a compact inline label with a semantic fill.
type Badge struct {
	BaseComponent
	label   string
	variant ButtonVariant
}

// NewBadge creates a primary badge.
func NewBadge(label string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the badge under the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the scoped theme.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	h := ctx.handle()
	bg, fg := b.variant.fill()

	return Style(b.ComputeStyle(h), h,
		Fill(bg, fg),
		PaddingX(1),
		Bold(),
	).Render(b.label)
}

// WithVariant sets the badge's semantic fill.
func (b *Badge) WithVariant(variant ButtonVariant) *Badge {
	b.variant = variant
	return b
}
