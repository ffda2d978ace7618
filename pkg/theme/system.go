package theme

import "github.com/charmbracelet/lipgloss"

// BackgroundDetector reports whether the terminal background is dark. It is
// the appearance signal the system theme resolves against.
type BackgroundDetector func() bool

// TerminalBackground is the default detector, backed by lipgloss's terminal
// background query.
func TerminalBackground() bool {
	return lipgloss.HasDarkBackground()
}

// systemTheme defers every color to whichever of Light/Dark matches the
// detector at the moment of access. Accessors are deliberately not
// referentially stable: two reads under different appearances return
// different colors, which is what keeps long-lived consumers in sync with
// the terminal without an invalidation protocol. Never cache its colors,
// only the theme value itself.
type systemTheme struct {
	isDark BackgroundDetector
}

var (
	_ Theme                       = systemTheme{}
	_ PrimaryVariantProvider      = systemTheme{}
	_ SecondaryVariantProvider    = systemTheme{}
	_ OnPrimaryProvider           = systemTheme{}
	_ OnSecondaryProvider         = systemTheme{}
	_ OnBackgroundProvider        = systemTheme{}
	_ OnSurfaceProvider           = systemTheme{}
	_ BackgroundSecondaryProvider = systemTheme{}
	_ SurfaceElevatedProvider     = systemTheme{}
)

// System returns the system-adaptive theme using the terminal background as
// the appearance signal.
func System() Theme {
	return SystemWithDetector(TerminalBackground)
}

// SystemWithDetector returns a system-adaptive theme resolving against a
// custom appearance signal. Useful in tests and in embedders that track the
// host appearance themselves.
func SystemWithDetector(isDark BackgroundDetector) Theme {
	if isDark == nil {
		isDark = TerminalBackground
	}
	return systemTheme{isDark: isDark}
}

func (s systemTheme) resolve() builtin {
	if s.isDark() {
		return Dark().(builtin)
	}
	return Light().(builtin)
}

func (s systemTheme) Name() string { return SystemName }

// PreferredMode reports no override: the system theme follows the terminal.
func (s systemTheme) PreferredMode() (Mode, bool) { return ModeSystem, false }

func (s systemTheme) Primary() lipgloss.TerminalColor       { return s.resolve().Primary() }
func (s systemTheme) Secondary() lipgloss.TerminalColor     { return s.resolve().Secondary() }
func (s systemTheme) Background() lipgloss.TerminalColor    { return s.resolve().Background() }
func (s systemTheme) Surface() lipgloss.TerminalColor       { return s.resolve().Surface() }
func (s systemTheme) Success() lipgloss.TerminalColor       { return s.resolve().Success() }
func (s systemTheme) Warning() lipgloss.TerminalColor       { return s.resolve().Warning() }
func (s systemTheme) Error() lipgloss.TerminalColor         { return s.resolve().Error() }
func (s systemTheme) Info() lipgloss.TerminalColor          { return s.resolve().Info() }
func (s systemTheme) TextPrimary() lipgloss.TerminalColor   { return s.resolve().TextPrimary() }
func (s systemTheme) TextSecondary() lipgloss.TerminalColor { return s.resolve().TextSecondary() }
func (s systemTheme) TextTertiary() lipgloss.TerminalColor  { return s.resolve().TextTertiary() }
func (s systemTheme) Border() lipgloss.TerminalColor        { return s.resolve().Border() }
func (s systemTheme) Divider() lipgloss.TerminalColor       { return s.resolve().Divider() }

func (s systemTheme) PrimaryVariant() lipgloss.TerminalColor   { return s.resolve().PrimaryVariant() }
func (s systemTheme) SecondaryVariant() lipgloss.TerminalColor { return s.resolve().SecondaryVariant() }
func (s systemTheme) OnPrimary() lipgloss.TerminalColor        { return s.resolve().OnPrimary() }
func (s systemTheme) OnSecondary() lipgloss.TerminalColor      { return s.resolve().OnSecondary() }
func (s systemTheme) OnBackground() lipgloss.TerminalColor     { return s.resolve().OnBackground() }
func (s systemTheme) OnSurface() lipgloss.TerminalColor        { return s.resolve().OnSurface() }
func (s systemTheme) BackgroundSecondary() lipgloss.TerminalColor {
	return s.resolve().BackgroundSecondary()
}
func (s systemTheme) SurfaceElevated() lipgloss.TerminalColor { return s.resolve().SurfaceElevated() }
