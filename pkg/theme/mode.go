package theme

import "fmt"

// Mode selects which built-in appearance the library resolves against.
type Mode int

const (
	// ModeLight forces the light palette.
	ModeLight Mode = iota
	// ModeDark forces the dark palette.
	ModeDark
	// ModeSystem follows the terminal's background at read time.
	ModeSystem
)

// String returns the persisted representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	case ModeSystem:
		return "system"
	default:
		return "system"
	}
}

// Next advances light → dark → system → light.
func (m Mode) Next() Mode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeSystem
	default:
		return ModeLight
	}
}

// ParseMode converts a persisted mode string back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	case "system":
		return ModeSystem, nil
	default:
		return ModeSystem, fmt.Errorf("unknown theme mode %q", s)
	}
}
