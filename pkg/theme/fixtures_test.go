package theme

import "github.com/charmbracelet/lipgloss"

// brandTheme is a minimal Theme implementation: only the required roles, so
// every derived role exercises the default formulas.
type brandTheme struct {
	name string
}

func (b brandTheme) Name() string                { return b.name }
func (b brandTheme) PreferredMode() (Mode, bool) { return ModeDark, true }

func (b brandTheme) Primary() lipgloss.TerminalColor    { return lipgloss.Color("#ff0080") }
func (b brandTheme) Secondary() lipgloss.TerminalColor  { return lipgloss.Color("#00ffcc") }
func (b brandTheme) Background() lipgloss.TerminalColor { return lipgloss.Color("#000000") }
func (b brandTheme) Surface() lipgloss.TerminalColor    { return lipgloss.Color("#ffffff") }

func (b brandTheme) Success() lipgloss.TerminalColor { return lipgloss.Color("#00aa00") }
func (b brandTheme) Warning() lipgloss.TerminalColor { return lipgloss.Color("#aaaa00") }
func (b brandTheme) Error() lipgloss.TerminalColor   { return lipgloss.Color("#aa0000") }
func (b brandTheme) Info() lipgloss.TerminalColor    { return lipgloss.Color("#0000aa") }

func (b brandTheme) TextPrimary() lipgloss.TerminalColor   { return lipgloss.Color("#eeeeee") }
func (b brandTheme) TextSecondary() lipgloss.TerminalColor { return lipgloss.Color("#bbbbbb") }
func (b brandTheme) TextTertiary() lipgloss.TerminalColor  { return lipgloss.Color("#888888") }

func (b brandTheme) Border() lipgloss.TerminalColor  { return lipgloss.Color("#444444") }
func (b brandTheme) Divider() lipgloss.TerminalColor { return lipgloss.Color("#222222") }

// followTheme is a theme with no mode preference.
type followTheme struct {
	brandTheme
}

func (f followTheme) PreferredMode() (Mode, bool) { return ModeSystem, false }

// overridingTheme supplies its own derived roles.
type overridingTheme struct {
	brandTheme
}

func (o overridingTheme) OnPrimary() lipgloss.TerminalColor       { return lipgloss.Color("#123456") }
func (o overridingTheme) SurfaceElevated() lipgloss.TerminalColor { return lipgloss.Color("#654321") }
