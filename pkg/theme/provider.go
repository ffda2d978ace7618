package theme

// Provider resolves a theme selection into the pair every rendering scope
// needs: the erased handle descendants read colors from, and the display-mode
// override the rendering surface should assume. Scoping and innermost-wins
// nesting are structural — a render context derived from an inner provider
// simply shadows the outer one (see pkg/components.RenderContext.WithTheme).
//
// Providers are cheap values. Consumers observing a Manager should build a
// fresh provider on each change notification rather than cache one, so that
// system-theme reads keep following the terminal appearance.
type Provider struct {
	handle      Handle
	override    Mode
	hasOverride bool
}

// NewProvider scopes an explicit theme. The display-mode override follows
// the theme's preferred mode and is unset for system-following themes.
func NewProvider(t Theme) Provider {
	h := NewHandle(t)
	mode, ok := h.PreferredMode()
	if ok && mode == ModeSystem {
		ok = false
	}
	return Provider{handle: h, override: mode, hasOverride: ok}
}

// NewProviderForMode scopes a built-in mode.
func NewProviderForMode(mode Mode) Provider {
	switch mode {
	case ModeLight:
		return NewProvider(Light())
	case ModeDark:
		return NewProvider(Dark())
	default:
		return NewProvider(System())
	}
}

// NewProviderFromManager scopes the manager's currently resolved theme.
func NewProviderFromManager(m *Manager) Provider {
	return NewProvider(m.Current())
}

// Handle returns the contextual theme value for the scope.
func (p Provider) Handle() Handle {
	if !p.handle.Valid() {
		return Default()
	}
	return p.handle
}

// ModeOverride reports the light/dark override for the scope. The second
// return is false when the scope follows the terminal appearance.
func (p Provider) ModeOverride() (Mode, bool) {
	return p.override, p.hasOverride
}
