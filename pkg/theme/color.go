package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// blendToward mixes a small amount of the target color into the base color.
// This backs the default secondary-background derivation: terminals have no
// alpha channel, so "background at reduced opacity" becomes a slight blend
// toward the surface tone. Non-hex colors are returned unchanged.
func blendToward(base, target lipgloss.TerminalColor, amount float64) lipgloss.TerminalColor {
	switch b := base.(type) {
	case lipgloss.Color:
		t, ok := target.(lipgloss.Color)
		if !ok {
			return base
		}
		return blendHex(b, t, amount)
	case lipgloss.AdaptiveColor:
		t, ok := target.(lipgloss.AdaptiveColor)
		if !ok {
			return base
		}
		light := blendHex(lipgloss.Color(b.Light), lipgloss.Color(t.Light), amount)
		dark := blendHex(lipgloss.Color(b.Dark), lipgloss.Color(t.Dark), amount)
		return lipgloss.AdaptiveColor{Light: string(light), Dark: string(dark)}
	default:
		return base
	}
}

func blendHex(base, target lipgloss.Color, amount float64) lipgloss.Color {
	br, bg, bb, ok := parseHex(string(base))
	if !ok {
		return base
	}
	tr, tg, tb, ok := parseHex(string(target))
	if !ok {
		return base
	}

	mix := func(b, t int) int {
		v := int(float64(b)*(1-amount) + float64(t)*amount)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return v
	}

	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", mix(br, tr), mix(bg, tg), mix(bb, tb)))
}

func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
