package components

// ButtonVariant selects a button's semantic fill.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

// fill maps a button variant to its background and foreground roles.
func (v ButtonVariant) fill() (bg, fg Role) {
	switch v {
	case ButtonVariantSecondary:
		return RoleSecondary, RoleOnSecondary
	case ButtonVariantSuccess:
		return RoleSuccess, RoleOnPrimary
	case ButtonVariantError:
		return RoleError, RoleOnPrimary
	case ButtonVariantWarning:
		return RoleWarning, RoleOnPrimary
	case ButtonVariantInfo:
		return RoleInfo, RoleOnPrimary
	case ButtonVariantMuted:
		return RoleSurfaceElevated, RoleTextSecondary
	default:
		return RolePrimary, RoleOnPrimary
	}
}

// AlertVariant selects an alert's status role.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// role maps an alert variant to its status role.
func (v AlertVariant) role() Role {
	switch v {
	case AlertVariantSuccess:
		return RoleSuccess
	case AlertVariantWarning:
		return RoleWarning
	case AlertVariantError:
		return RoleError
	default:
		return RoleInfo
	}
}

// icon returns the default glyph for the variant.
func (v AlertVariant) icon() string {
	switch v {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "⚠"
	case AlertVariantError:
		return "✗"
	default:
		return "ℹ"
	}
}
