package theme

import "github.com/charmbracelet/lipgloss"

// Handle is the type-erased carrier for any Theme implementation. It captures
// every accessor as a closure at construction time, so heterogeneous theme
// values can sit in one uniformly-typed slot (manager state, render context)
// without the consumer knowing which implementation is active.
//
// A Handle constructed from theme A never observes a later theme B: each
// closure closes over its own captured value. The zero Handle is not usable;
// construct one with NewHandle or Default.
type Handle struct {
	name          func() string
	preferredMode func() (Mode, bool)

	primary    func() lipgloss.TerminalColor
	secondary  func() lipgloss.TerminalColor
	background func() lipgloss.TerminalColor
	surface    func() lipgloss.TerminalColor

	success func() lipgloss.TerminalColor
	warning func() lipgloss.TerminalColor
	errRole func() lipgloss.TerminalColor
	info    func() lipgloss.TerminalColor

	textPrimary   func() lipgloss.TerminalColor
	textSecondary func() lipgloss.TerminalColor
	textTertiary  func() lipgloss.TerminalColor

	border  func() lipgloss.TerminalColor
	divider func() lipgloss.TerminalColor

	primaryVariant   func() lipgloss.TerminalColor
	secondaryVariant func() lipgloss.TerminalColor

	onPrimary    func() lipgloss.TerminalColor
	onSecondary  func() lipgloss.TerminalColor
	onBackground func() lipgloss.TerminalColor
	onSurface    func() lipgloss.TerminalColor

	backgroundSecondary func() lipgloss.TerminalColor
	surfaceElevated     func() lipgloss.TerminalColor
}

var _ Theme = Handle{}

// HandleOption overrides a derived role on a freshly constructed Handle.
type HandleOption func(*Handle)

func colorOption(dst func(*Handle) *func() lipgloss.TerminalColor, c lipgloss.TerminalColor) HandleOption {
	return func(h *Handle) {
		*dst(h) = func() lipgloss.TerminalColor { return c }
	}
}

// WithPrimaryVariant fixes the primary variant shade.
func WithPrimaryVariant(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.primaryVariant }, c)
}

// WithSecondaryVariant fixes the secondary variant shade.
func WithSecondaryVariant(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.secondaryVariant }, c)
}

// WithOnPrimary fixes the foreground used on primary fills.
func WithOnPrimary(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.onPrimary }, c)
}

// WithOnSecondary fixes the foreground used on secondary fills.
func WithOnSecondary(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.onSecondary }, c)
}

// WithOnBackground fixes the foreground used on the base background.
func WithOnBackground(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.onBackground }, c)
}

// WithOnSurface fixes the foreground used on surfaces.
func WithOnSurface(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.onSurface }, c)
}

// WithBackgroundSecondary fixes the secondary background tier.
func WithBackgroundSecondary(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.backgroundSecondary }, c)
}

// WithSurfaceElevated fixes the elevated surface tier.
func WithSurfaceElevated(c lipgloss.TerminalColor) HandleOption {
	return colorOption(func(h *Handle) *func() lipgloss.TerminalColor { return &h.surfaceElevated }, c)
}

// NewHandle wraps a Theme behind the erased carrier. Wrapping an existing
// Handle returns it unchanged unless options are supplied; construction
// cannot fail.
func NewHandle(t Theme, opts ...HandleOption) Handle {
	if h, ok := t.(Handle); ok {
		if len(opts) == 0 {
			return h
		}
		for _, opt := range opts {
			opt(&h)
		}
		return h
	}

	h := Handle{
		name:          t.Name,
		preferredMode: t.PreferredMode,
		primary:       t.Primary,
		secondary:     t.Secondary,
		background:    t.Background,
		surface:       t.Surface,
		success:       t.Success,
		warning:       t.Warning,
		errRole:       t.Error,
		info:          t.Info,
		textPrimary:   t.TextPrimary,
		textSecondary: t.TextSecondary,
		textTertiary:  t.TextTertiary,
		border:        t.Border,
		divider:       t.Divider,
	}

	// Derived roles: prefer the theme's own accessor, otherwise capture the
	// default formula over the wrapped value.
	if p, ok := t.(PrimaryVariantProvider); ok {
		h.primaryVariant = p.PrimaryVariant
	} else {
		h.primaryVariant = t.Primary
	}
	if p, ok := t.(SecondaryVariantProvider); ok {
		h.secondaryVariant = p.SecondaryVariant
	} else {
		h.secondaryVariant = t.Secondary
	}
	if p, ok := t.(OnPrimaryProvider); ok {
		h.onPrimary = p.OnPrimary
	} else {
		h.onPrimary = func() lipgloss.TerminalColor { return white }
	}
	if p, ok := t.(OnSecondaryProvider); ok {
		h.onSecondary = p.OnSecondary
	} else {
		h.onSecondary = func() lipgloss.TerminalColor { return white }
	}
	if p, ok := t.(OnBackgroundProvider); ok {
		h.onBackground = p.OnBackground
	} else {
		h.onBackground = t.TextPrimary
	}
	if p, ok := t.(OnSurfaceProvider); ok {
		h.onSurface = p.OnSurface
	} else {
		h.onSurface = t.TextPrimary
	}
	if p, ok := t.(BackgroundSecondaryProvider); ok {
		h.backgroundSecondary = p.BackgroundSecondary
	} else {
		h.backgroundSecondary = func() lipgloss.TerminalColor {
			return blendToward(t.Background(), t.Surface(), 0.05)
		}
	}
	if p, ok := t.(SurfaceElevatedProvider); ok {
		h.surfaceElevated = p.SurfaceElevated
	} else {
		h.surfaceElevated = t.Surface
	}

	for _, opt := range opts {
		opt(&h)
	}

	return h
}

// Default returns a handle over the system-adaptive theme.
func Default() Handle {
	return NewHandle(System())
}

// Valid reports whether the handle wraps a theme.
func (h Handle) Valid() bool {
	return h.name != nil
}

func (h Handle) Name() string                          { return h.name() }
func (h Handle) PreferredMode() (Mode, bool)           { return h.preferredMode() }
func (h Handle) Primary() lipgloss.TerminalColor       { return h.primary() }
func (h Handle) Secondary() lipgloss.TerminalColor     { return h.secondary() }
func (h Handle) Background() lipgloss.TerminalColor    { return h.background() }
func (h Handle) Surface() lipgloss.TerminalColor       { return h.surface() }
func (h Handle) Success() lipgloss.TerminalColor       { return h.success() }
func (h Handle) Warning() lipgloss.TerminalColor       { return h.warning() }
func (h Handle) Error() lipgloss.TerminalColor         { return h.errRole() }
func (h Handle) Info() lipgloss.TerminalColor          { return h.info() }
func (h Handle) TextPrimary() lipgloss.TerminalColor   { return h.textPrimary() }
func (h Handle) TextSecondary() lipgloss.TerminalColor { return h.textSecondary() }
func (h Handle) TextTertiary() lipgloss.TerminalColor  { return h.textTertiary() }
func (h Handle) Border() lipgloss.TerminalColor        { return h.border() }
func (h Handle) Divider() lipgloss.TerminalColor       { return h.divider() }

func (h Handle) PrimaryVariant() lipgloss.TerminalColor      { return h.primaryVariant() }
func (h Handle) SecondaryVariant() lipgloss.TerminalColor    { return h.secondaryVariant() }
func (h Handle) OnPrimary() lipgloss.TerminalColor           { return h.onPrimary() }
func (h Handle) OnSecondary() lipgloss.TerminalColor         { return h.onSecondary() }
func (h Handle) OnBackground() lipgloss.TerminalColor        { return h.onBackground() }
func (h Handle) OnSurface() lipgloss.TerminalColor           { return h.onSurface() }
func (h Handle) BackgroundSecondary() lipgloss.TerminalColor { return h.backgroundSecondary() }
func (h Handle) SurfaceElevated() lipgloss.TerminalColor     { return h.surfaceElevated() }
