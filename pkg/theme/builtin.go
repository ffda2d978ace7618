package theme

import "github.com/charmbracelet/lipgloss"

// roleColors is the full set of resolved role values for a fixed palette.
type roleColors struct {
	primary          lipgloss.Color
	primaryVariant   lipgloss.Color
	secondary        lipgloss.Color
	secondaryVariant lipgloss.Color

	background          lipgloss.Color
	backgroundSecondary lipgloss.Color
	surface             lipgloss.Color
	surfaceElevated     lipgloss.Color

	success lipgloss.Color
	warning lipgloss.Color
	errRole lipgloss.Color
	info    lipgloss.Color

	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textTertiary  lipgloss.Color

	border  lipgloss.Color
	divider lipgloss.Color

	onPrimary    lipgloss.Color
	onSecondary  lipgloss.Color
	onBackground lipgloss.Color
	onSurface    lipgloss.Color
}

// builtin is a fixed-value theme. Every accessor returns a literal constant,
// tuned per palette for adequate contrast.
type builtin struct {
	name string
	mode Mode
	c    roleColors
}

var (
	_ Theme                       = builtin{}
	_ PrimaryVariantProvider      = builtin{}
	_ SecondaryVariantProvider    = builtin{}
	_ OnPrimaryProvider           = builtin{}
	_ OnSecondaryProvider         = builtin{}
	_ OnBackgroundProvider        = builtin{}
	_ OnSurfaceProvider           = builtin{}
	_ BackgroundSecondaryProvider = builtin{}
	_ SurfaceElevatedProvider     = builtin{}
)

func (b builtin) Name() string                  { return b.name }
func (b builtin) PreferredMode() (Mode, bool)   { return b.mode, true }
func (b builtin) Primary() lipgloss.TerminalColor   { return b.c.primary }
func (b builtin) Secondary() lipgloss.TerminalColor { return b.c.secondary }
func (b builtin) Background() lipgloss.TerminalColor { return b.c.background }
func (b builtin) Surface() lipgloss.TerminalColor    { return b.c.surface }
func (b builtin) Success() lipgloss.TerminalColor    { return b.c.success }
func (b builtin) Warning() lipgloss.TerminalColor    { return b.c.warning }
func (b builtin) Error() lipgloss.TerminalColor      { return b.c.errRole }
func (b builtin) Info() lipgloss.TerminalColor       { return b.c.info }
func (b builtin) TextPrimary() lipgloss.TerminalColor   { return b.c.textPrimary }
func (b builtin) TextSecondary() lipgloss.TerminalColor { return b.c.textSecondary }
func (b builtin) TextTertiary() lipgloss.TerminalColor  { return b.c.textTertiary }
func (b builtin) Border() lipgloss.TerminalColor        { return b.c.border }
func (b builtin) Divider() lipgloss.TerminalColor       { return b.c.divider }

func (b builtin) PrimaryVariant() lipgloss.TerminalColor      { return b.c.primaryVariant }
func (b builtin) SecondaryVariant() lipgloss.TerminalColor    { return b.c.secondaryVariant }
func (b builtin) OnPrimary() lipgloss.TerminalColor           { return b.c.onPrimary }
func (b builtin) OnSecondary() lipgloss.TerminalColor         { return b.c.onSecondary }
func (b builtin) OnBackground() lipgloss.TerminalColor        { return b.c.onBackground }
func (b builtin) OnSurface() lipgloss.TerminalColor           { return b.c.onSurface }
func (b builtin) BackgroundSecondary() lipgloss.TerminalColor { return b.c.backgroundSecondary }
func (b builtin) SurfaceElevated() lipgloss.TerminalColor     { return b.c.surfaceElevated }

// LightName and DarkName are the registry-reserved names of the built-ins.
const (
	LightName  = "light"
	DarkName   = "dark"
	SystemName = "system"
)

// Light returns the built-in light palette.
func Light() Theme {
	return builtin{
		name: LightName,
		mode: ModeLight,
		c: roleColors{
			primary:          "#3b82f6",
			primaryVariant:   "#2563eb",
			secondary:        "#a855f7",
			secondaryVariant: "#7c3aed",

			background:          "#f8fafc",
			backgroundSecondary: "#f1f5f9",
			surface:             "#f9fafb",
			surfaceElevated:     "#ffffff",

			success: "#16a34a",
			warning: "#ca8a04",
			errRole: "#dc2626",
			info:    "#0891b2",

			textPrimary:   "#0f172a",
			textSecondary: "#475569",
			textTertiary:  "#94a3b8",

			border:  "#cbd5e1",
			divider: "#e2e8f0",

			onPrimary:    "#f8fafc",
			onSecondary:  "#f8fafc",
			onBackground: "#0f172a",
			onSurface:    "#111827",
		},
	}
}

// Dark returns the built-in dark palette.
func Dark() Theme {
	return builtin{
		name: DarkName,
		mode: ModeDark,
		c: roleColors{
			primary:          "#60a5fa",
			primaryVariant:   "#3b82f6",
			secondary:        "#c084fc",
			secondaryVariant: "#a855f7",

			background:          "#0f172a",
			backgroundSecondary: "#1e293b",
			surface:             "#111827",
			surfaceElevated:     "#1f2937",

			success: "#4ade80",
			warning: "#facc15",
			errRole: "#f87171",
			info:    "#22d3ee",

			textPrimary:   "#f8fafc",
			textSecondary: "#cbd5e1",
			textTertiary:  "#64748b",

			border:  "#334155",
			divider: "#1e293b",

			onPrimary:    "#0b1120",
			onSecondary:  "#1f2937",
			onBackground: "#f8fafc",
			onSurface:    "#f8fafc",
		},
	}
}
