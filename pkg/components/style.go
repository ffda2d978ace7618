package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/pkg/theme"
)

// Role selects a semantic color from a theme handle. Components style
// themselves exclusively through roles, never through literal colors, so a
// theme switch restyles everything.
type Role func(theme.Handle) lipgloss.TerminalColor

// Semantic role selectors.
var (
	RolePrimary          Role = theme.Handle.Primary
	RolePrimaryVariant   Role = theme.Handle.PrimaryVariant
	RoleSecondary        Role = theme.Handle.Secondary
	RoleSecondaryVariant Role = theme.Handle.SecondaryVariant

	RoleBackground          Role = theme.Handle.Background
	RoleBackgroundSecondary Role = theme.Handle.BackgroundSecondary
	RoleSurface             Role = theme.Handle.Surface
	RoleSurfaceElevated     Role = theme.Handle.SurfaceElevated

	RoleSuccess Role = theme.Handle.Success
	RoleWarning Role = theme.Handle.Warning
	RoleError   Role = theme.Handle.Error
	RoleInfo    Role = theme.Handle.Info

	RoleTextPrimary   Role = theme.Handle.TextPrimary
	RoleTextSecondary Role = theme.Handle.TextSecondary
	RoleTextTertiary  Role = theme.Handle.TextTertiary

	RoleBorder  Role = theme.Handle.Border
	RoleDivider Role = theme.Handle.Divider

	RoleOnPrimary    Role = theme.Handle.OnPrimary
	RoleOnSecondary  Role = theme.Handle.OnSecondary
	RoleOnBackground Role = theme.Handle.OnBackground
	RoleOnSurface    Role = theme.Handle.OnSurface
)

// StyleFunc applies a theme-aware transformation to a lipgloss style.
type StyleFunc func(lipgloss.Style, theme.Handle) lipgloss.Style

// Style threads a base style through a chain of modifiers under one handle.
func Style(base lipgloss.Style, h theme.Handle, modifiers ...StyleFunc) lipgloss.Style {
	for _, fn := range modifiers {
		base = fn(base, h)
	}
	return base
}

// Foreground colors text with a semantic role.
func Foreground(role Role) StyleFunc {
	return func(base lipgloss.Style, h theme.Handle) lipgloss.Style {
		return base.Foreground(role(h))
	}
}

// Background fills with a semantic role.
func Background(role Role) StyleFunc {
	return func(base lipgloss.Style, h theme.Handle) lipgloss.Style {
		return base.Background(role(h))
	}
}

// Fill sets a background role together with its foreground counterpart.
func Fill(bg, fg Role) StyleFunc {
	return func(base lipgloss.Style, h theme.Handle) lipgloss.Style {
		return base.Background(bg(h)).Foreground(fg(h))
	}
}

// Bordered applies a border drawn in a semantic role.
func Bordered(border lipgloss.Border, role Role) StyleFunc {
	return func(base lipgloss.Style, h theme.Handle) lipgloss.Style {
		return base.Border(border).BorderForeground(role(h))
	}
}

// Padding applies uniform padding.
func Padding(n int) StyleFunc {
	return func(base lipgloss.Style, _ theme.Handle) lipgloss.Style {
		return base.Padding(n)
	}
}

// PaddingX applies horizontal padding.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ theme.Handle) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// PaddingY applies vertical padding.
func PaddingY(n int) StyleFunc {
	return func(base lipgloss.Style, _ theme.Handle) lipgloss.Style {
		return base.PaddingTop(n).PaddingBottom(n)
	}
}

// Bold switches bold rendering on.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ theme.Handle) lipgloss.Style {
		return base.Bold(true)
	}
}

// Faint dims the rendering.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ theme.Handle) lipgloss.Style {
		return base.Faint(true)
	}
}
