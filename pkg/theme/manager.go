package theme

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/glintui/glint/internal/logger"
	glinterrors "github.com/glintui/glint/pkg/errors"
)

// ErrThemeActive is returned by RegisterTheme when the name collides with the
// currently active custom theme. Replacing the live theme silently would swap
// colors out from under the UI; SetTheme is the explicit way to do that.
var ErrThemeActive = errors.New("theme with this name is active; use SetTheme to replace it")

// Options configures a Manager. Zero values are usable: selections are not
// persisted, logging is disabled and the appearance signal is the terminal
// background.
type Options struct {
	Store    Store
	Logger   *logger.Logger
	Detector BackgroundDetector
}

// Manager is the single source of truth for which theme is active app-wide.
// It holds the active mode, a registry of custom themes by name and the name
// of the active custom theme, persisting the selection on every mutation and
// rehydrating it at construction.
//
// Mutations are expected from the UI goroutine; the mutex only protects
// readers on other goroutines. Last write wins.
type Manager struct {
	mu           sync.RWMutex
	mode         Mode
	custom       map[string]Handle
	activeCustom string

	light  Handle
	dark   Handle
	system Handle

	store Store
	log   *logger.Logger

	subs    map[int]func(Handle)
	nextSub int
}

// NewManager constructs a manager and rehydrates the persisted selection.
// The custom registry is not persisted: a persisted custom theme name stays
// pending until the theme is re-registered, and the mode applies meanwhile.
func NewManager(opts Options) *Manager {
	store := opts.Store
	if store == nil {
		store = NopStore{}
	}
	detector := opts.Detector
	if detector == nil {
		detector = TerminalBackground
	}

	m := &Manager{
		mode:   ModeSystem,
		custom: make(map[string]Handle),
		light:  NewHandle(Light()),
		dark:   NewHandle(Dark()),
		system: NewHandle(SystemWithDetector(detector)),
		store:  store,
		log:    opts.Logger,
		subs:   make(map[int]func(Handle)),
	}

	sel, err := store.Load()
	if err != nil {
		m.log.Error(err, "failed to load theme selection, using defaults")
		return m
	}
	m.mode = sel.Mode
	m.activeCustom = sel.CustomThemeName

	return m
}

// Current resolves the active theme handle: the active custom theme when it
// is registered, otherwise the built-in for the active mode.
func (m *Manager) Current() Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resolveLocked()
}

// Mode returns the active mode.
func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Selection returns a snapshot of the persisted selection.
func (m *Manager) Selection() Selection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Selection{Mode: m.mode, CustomThemeName: m.activeCustom}
}

// SetMode activates a built-in mode. Mode selection and custom-theme
// selection are mutually exclusive, so any active custom theme is cleared.
func (m *Manager) SetMode(mode Mode) {
	m.mu.Lock()
	m.mode = mode
	m.activeCustom = ""
	m.persistLocked()
	m.mu.Unlock()
	m.notify()
}

// SetTheme registers (or replaces) the theme under its own name and makes it
// active. The theme's name becomes the persisted custom selection.
func (m *Manager) SetTheme(t Theme) error {
	h := NewHandle(t)
	name := h.Name()
	if err := validateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	m.custom[name] = h
	m.activeCustom = name
	m.persistLocked()
	m.mu.Unlock()
	m.notify()
	return nil
}

// RegisterTheme adds a theme to the registry without activating it. An empty
// name is a validation error. Re-registering the name of the currently
// active custom theme is rejected with ErrThemeActive; any other name
// collision overwrites.
func (m *Manager) RegisterTheme(t Theme) error {
	h := NewHandle(t)
	name := h.Name()
	if err := validateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	_, exists := m.custom[name]
	if exists && m.activeCustom == name {
		m.mu.Unlock()
		return ErrThemeActive
	}
	m.custom[name] = h
	// A persisted custom selection resolves the moment its theme shows up.
	becameActive := m.activeCustom == name
	m.mu.Unlock()

	if becameActive {
		m.notify()
	}
	return nil
}

// UnregisterTheme removes a custom theme from the registry. Unregistering
// the active theme falls back to system mode. Unknown names are a no-op.
func (m *Manager) UnregisterTheme(name string) {
	m.mu.Lock()
	_, exists := m.custom[name]
	delete(m.custom, name)
	wasActive := m.activeCustom == name
	if wasActive {
		m.activeCustom = ""
		m.mode = ModeSystem
		m.persistLocked()
	}
	m.mu.Unlock()

	if exists && wasActive {
		m.notify()
	}
}

// ThemeNamed looks up a registered custom theme. Absence is not an error.
func (m *Manager) ThemeNamed(name string) (Handle, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.custom[name]
	return h, ok
}

// ThemeNames returns the sorted names of all registered custom themes.
func (m *Manager) ThemeNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.custom))
	for name := range m.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToggleTheme flips strictly between light and dark. From system mode or a
// custom theme it moves to light.
func (m *Manager) ToggleTheme() {
	m.mu.Lock()
	if m.activeCustom == "" && m.mode == ModeLight {
		m.mode = ModeDark
	} else {
		m.mode = ModeLight
	}
	m.activeCustom = ""
	m.persistLocked()
	m.mu.Unlock()
	m.notify()
}

// CycleMode advances light → dark → system → light, clearing any active
// custom theme.
func (m *Manager) CycleMode() {
	m.mu.Lock()
	m.mode = m.mode.Next()
	m.activeCustom = ""
	m.persistLocked()
	m.mu.Unlock()
	m.notify()
}

// ResetToDefault clears the custom selection and returns to system mode.
func (m *Manager) ResetToDefault() {
	m.mu.Lock()
	m.mode = ModeSystem
	m.activeCustom = ""
	m.persistLocked()
	m.mu.Unlock()
	m.notify()
}

// Subscribe registers an observer invoked with the resolved handle after
// every effective mutation. The returned function removes the observer.
func (m *Manager) Subscribe(fn func(Handle)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Manager) resolveLocked() Handle {
	if m.activeCustom != "" {
		if h, ok := m.custom[m.activeCustom]; ok {
			return h
		}
		// Persisted name not re-registered yet: fall back to the mode.
	}
	switch m.mode {
	case ModeLight:
		return m.light
	case ModeDark:
		return m.dark
	default:
		return m.system
	}
}

// persistLocked writes the selection through the store. Failures never block
// the in-memory change; they are logged and the session carries on.
func (m *Manager) persistLocked() {
	sel := Selection{Mode: m.mode, CustomThemeName: m.activeCustom}
	if err := m.store.Save(sel); err != nil {
		m.log.Error(err, "failed to persist theme selection")
		return
	}
	m.log.WithFields(map[string]any{
		"mode":  sel.Mode.String(),
		"theme": sel.CustomThemeName,
	}).Debug("theme selection persisted")
}

func (m *Manager) notify() {
	m.mu.RLock()
	h := m.resolveLocked()
	subs := make([]func(Handle), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.RUnlock()

	for _, fn := range subs {
		fn(h)
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return glinterrors.NewValidationError("name", "theme name must not be empty", nil)
	}
	return nil
}
