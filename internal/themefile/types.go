// Package themefile loads custom theme definitions from YAML files. The
// registry is never persisted, so definition files are how custom themes come
// back at process start: the CLI parses every file in the themes directory
// and registers the results before resolving the persisted selection.
package themefile

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/pkg/theme"
)

// Definition is the YAML shape of a custom theme.
type Definition struct {
	Name   string `yaml:"name" validate:"required,theme_name"`
	Mode   string `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark system"`
	Colors Colors `yaml:"colors" validate:"required"`
}

// Colors carries the semantic roles. The first block is required; the second
// is optional overrides for derived roles.
type Colors struct {
	Primary    string `yaml:"primary" validate:"required,hexcolor"`
	Secondary  string `yaml:"secondary" validate:"required,hexcolor"`
	Background string `yaml:"background" validate:"required,hexcolor"`
	Surface    string `yaml:"surface" validate:"required,hexcolor"`

	Success string `yaml:"success" validate:"required,hexcolor"`
	Warning string `yaml:"warning" validate:"required,hexcolor"`
	Error   string `yaml:"error" validate:"required,hexcolor"`
	Info    string `yaml:"info" validate:"required,hexcolor"`

	TextPrimary   string `yaml:"textPrimary" validate:"required,hexcolor"`
	TextSecondary string `yaml:"textSecondary" validate:"required,hexcolor"`
	TextTertiary  string `yaml:"textTertiary" validate:"required,hexcolor"`

	Border  string `yaml:"border" validate:"required,hexcolor"`
	Divider string `yaml:"divider" validate:"required,hexcolor"`

	PrimaryVariant      string `yaml:"primaryVariant,omitempty" validate:"omitempty,hexcolor"`
	SecondaryVariant    string `yaml:"secondaryVariant,omitempty" validate:"omitempty,hexcolor"`
	OnPrimary           string `yaml:"onPrimary,omitempty" validate:"omitempty,hexcolor"`
	OnSecondary         string `yaml:"onSecondary,omitempty" validate:"omitempty,hexcolor"`
	OnBackground        string `yaml:"onBackground,omitempty" validate:"omitempty,hexcolor"`
	OnSurface           string `yaml:"onSurface,omitempty" validate:"omitempty,hexcolor"`
	BackgroundSecondary string `yaml:"backgroundSecondary,omitempty" validate:"omitempty,hexcolor"`
	SurfaceElevated     string `yaml:"surfaceElevated,omitempty" validate:"omitempty,hexcolor"`
}

// fileTheme adapts a parsed definition to the theme contract. Optional roles
// are layered on via handle options when the definition provides them.
type fileTheme struct {
	name    string
	mode    theme.Mode
	hasMode bool
	colors  Colors
}

var _ theme.Theme = fileTheme{}

func (f fileTheme) Name() string                       { return f.name }
func (f fileTheme) PreferredMode() (theme.Mode, bool)  { return f.mode, f.hasMode }
func (f fileTheme) Primary() lipgloss.TerminalColor    { return lipgloss.Color(f.colors.Primary) }
func (f fileTheme) Secondary() lipgloss.TerminalColor  { return lipgloss.Color(f.colors.Secondary) }
func (f fileTheme) Background() lipgloss.TerminalColor { return lipgloss.Color(f.colors.Background) }
func (f fileTheme) Surface() lipgloss.TerminalColor    { return lipgloss.Color(f.colors.Surface) }
func (f fileTheme) Success() lipgloss.TerminalColor    { return lipgloss.Color(f.colors.Success) }
func (f fileTheme) Warning() lipgloss.TerminalColor    { return lipgloss.Color(f.colors.Warning) }
func (f fileTheme) Error() lipgloss.TerminalColor      { return lipgloss.Color(f.colors.Error) }
func (f fileTheme) Info() lipgloss.TerminalColor       { return lipgloss.Color(f.colors.Info) }
func (f fileTheme) TextPrimary() lipgloss.TerminalColor {
	return lipgloss.Color(f.colors.TextPrimary)
}
func (f fileTheme) TextSecondary() lipgloss.TerminalColor {
	return lipgloss.Color(f.colors.TextSecondary)
}
func (f fileTheme) TextTertiary() lipgloss.TerminalColor {
	return lipgloss.Color(f.colors.TextTertiary)
}
func (f fileTheme) Border() lipgloss.TerminalColor  { return lipgloss.Color(f.colors.Border) }
func (f fileTheme) Divider() lipgloss.TerminalColor { return lipgloss.Color(f.colors.Divider) }

// Handle converts the definition into an erased theme handle, applying any
// optional role overrides the file specified.
func (d *Definition) Handle() theme.Handle {
	mode, hasMode := theme.ModeSystem, false
	if d.Mode != "" {
		if parsed, err := theme.ParseMode(d.Mode); err == nil && parsed != theme.ModeSystem {
			mode, hasMode = parsed, true
		}
	}

	base := fileTheme{name: d.Name, mode: mode, hasMode: hasMode, colors: d.Colors}

	var opts []theme.HandleOption
	addColor := func(value string, opt func(lipgloss.TerminalColor) theme.HandleOption) {
		if value != "" {
			opts = append(opts, opt(lipgloss.Color(value)))
		}
	}
	addColor(d.Colors.PrimaryVariant, theme.WithPrimaryVariant)
	addColor(d.Colors.SecondaryVariant, theme.WithSecondaryVariant)
	addColor(d.Colors.OnPrimary, theme.WithOnPrimary)
	addColor(d.Colors.OnSecondary, theme.WithOnSecondary)
	addColor(d.Colors.OnBackground, theme.WithOnBackground)
	addColor(d.Colors.OnSurface, theme.WithOnSurface)
	addColor(d.Colors.BackgroundSecondary, theme.WithBackgroundSecondary)
	addColor(d.Colors.SurfaceElevated, theme.WithSurfaceElevated)

	return theme.NewHandle(base, opts...)
}
