package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFromTheme(t *testing.T) {
	t.Parallel()

	p := NewProvider(brandTheme{name: "brand"})

	assert.Equal(t, "brand", p.Handle().Name())

	mode, ok := p.ModeOverride()
	require.True(t, ok)
	assert.Equal(t, ModeDark, mode)
}

func TestProviderForSystemHasNoOverride(t *testing.T) {
	t.Parallel()

	_, ok := NewProviderForMode(ModeSystem).ModeOverride()
	assert.False(t, ok, "system scope must follow the terminal appearance")

	_, ok = NewProvider(followTheme{brandTheme{name: "follow"}}).ModeOverride()
	assert.False(t, ok)
}

func TestProviderForModeUsesBuiltins(t *testing.T) {
	t.Parallel()

	light := NewProviderForMode(ModeLight)
	dark := NewProviderForMode(ModeDark)

	assert.Equal(t, LightName, light.Handle().Name())
	assert.Equal(t, DarkName, dark.Handle().Name())

	mode, ok := dark.ModeOverride()
	require.True(t, ok)
	assert.Equal(t, ModeDark, mode)
}

func TestProviderFromManagerTracksCurrent(t *testing.T) {
	t.Parallel()

	m := NewManager(Options{})
	require.NoError(t, m.SetTheme(brandTheme{name: "brand"}))

	p := NewProviderFromManager(m)
	assert.Equal(t, "brand", p.Handle().Name())
}

func TestZeroProviderFallsBackToSystem(t *testing.T) {
	t.Parallel()

	var p Provider
	assert.Equal(t, SystemName, p.Handle().Name())
}
