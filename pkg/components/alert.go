package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert displays a status message with a variant-colored border and glyph.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant AlertVariant
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          AlertVariantInfo.icon(),
	}
}

// View renders the alert under the default context.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the scoped theme.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	h := ctx.handle()
	role := a.variant.role()

	heading := Style(lipgloss.NewStyle(), h, Foreground(role), Bold()).
		Render(a.icon + " " + a.titleOrDefault())
	body := Style(lipgloss.NewStyle(), h, Foreground(RoleOnSurface)).
		Render(a.message)

	content := heading
	if a.message != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, heading, body)
	}

	box := Style(a.ComputeStyle(h), h,
		Background(RoleSurface),
		Bordered(lipgloss.NormalBorder(), role),
		Padding(1),
	)
	if w := ctx.Constraints.Clamp(lipgloss.Width(content)); w > 0 {
		box = box.Width(w)
	}

	return box.Render(content)
}

func (a *Alert) titleOrDefault() string {
	if a.title != "" {
		return a.title
	}
	switch a.variant {
	case AlertVariantSuccess:
		return "Success"
	case AlertVariantWarning:
		return "Warning"
	case AlertVariantError:
		return "Error"
	default:
		return "Info"
	}
}

// WithVariant sets the alert variant and its default glyph.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	a.icon = variant.icon()
	return a
}

// WithTitle replaces the variant's default heading.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithIcon sets a custom glyph.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithAppliers appends theme-aware style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Convenience constructors.

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
