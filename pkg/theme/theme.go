// Package theme provides the theming core for Glint: a color contract for
// theme implementations, a type-erased handle, built-in light/dark/system
// palettes, and a manager that owns the app-wide selection with durable
// persistence.
//
// Components never read colors from a concrete theme struct. They consume
// the erased Handle, either through a render context or by observing the
// Manager, so theme implementations stay swappable.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme enumerates every semantic color role an implementation must supply.
// Implementations should be value types; a theme is immutable once wrapped
// in a Handle.
type Theme interface {
	// Name identifies the theme. It is the registry key and must be unique
	// within a Manager's registry.
	Name() string

	// PreferredMode reports the display mode this theme wants. The second
	// return is false when the theme follows the terminal's appearance.
	PreferredMode() (Mode, bool)

	// Brand colors.
	Primary() lipgloss.TerminalColor
	Secondary() lipgloss.TerminalColor

	// Background and surface tiers.
	Background() lipgloss.TerminalColor
	Surface() lipgloss.TerminalColor

	// Semantic status colors.
	Success() lipgloss.TerminalColor
	Warning() lipgloss.TerminalColor
	Error() lipgloss.TerminalColor
	Info() lipgloss.TerminalColor

	// Text emphasis tiers.
	TextPrimary() lipgloss.TerminalColor
	TextSecondary() lipgloss.TerminalColor
	TextTertiary() lipgloss.TerminalColor

	// Structural colors.
	Border() lipgloss.TerminalColor
	Divider() lipgloss.TerminalColor
}

// Optional single-method extensions. A theme that does not implement one of
// these gets the documented default derivation when wrapped in a Handle, so
// a minimal implementation is never underspecified.

// PrimaryVariantProvider overrides the primary variant shade.
// Default: Primary.
type PrimaryVariantProvider interface {
	PrimaryVariant() lipgloss.TerminalColor
}

// SecondaryVariantProvider overrides the secondary variant shade.
// Default: Secondary.
type SecondaryVariantProvider interface {
	SecondaryVariant() lipgloss.TerminalColor
}

// OnPrimaryProvider overrides the foreground used on primary fills.
// Default: white.
type OnPrimaryProvider interface {
	OnPrimary() lipgloss.TerminalColor
}

// OnSecondaryProvider overrides the foreground used on secondary fills.
// Default: white.
type OnSecondaryProvider interface {
	OnSecondary() lipgloss.TerminalColor
}

// OnBackgroundProvider overrides the foreground used on the base background.
// Default: TextPrimary.
type OnBackgroundProvider interface {
	OnBackground() lipgloss.TerminalColor
}

// OnSurfaceProvider overrides the foreground used on surfaces.
// Default: TextPrimary.
type OnSurfaceProvider interface {
	OnSurface() lipgloss.TerminalColor
}

// BackgroundSecondaryProvider overrides the secondary background tier.
// Default: Background blended slightly toward the surface tone.
type BackgroundSecondaryProvider interface {
	BackgroundSecondary() lipgloss.TerminalColor
}

// SurfaceElevatedProvider overrides the elevated surface tier.
// Default: Surface.
type SurfaceElevatedProvider interface {
	SurfaceElevated() lipgloss.TerminalColor
}

var white = lipgloss.Color("#ffffff")
