package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/pkg/theme"
)

func TestButtonRendersLabel(t *testing.T) {
	t.Parallel()

	view := NewButton("Save").ViewWithContext(NewContext(theme.NewProvider(theme.Light())))
	assert.Contains(t, view, "Save")
}

func TestButtonVariantFills(t *testing.T) {
	t.Parallel()

	h := theme.NewHandle(theme.Light())

	cases := []struct {
		variant ButtonVariant
		bg      Role
		fg      Role
	}{
		{ButtonVariantPrimary, RolePrimary, RoleOnPrimary},
		{ButtonVariantSecondary, RoleSecondary, RoleOnSecondary},
		{ButtonVariantSuccess, RoleSuccess, RoleOnPrimary},
		{ButtonVariantError, RoleError, RoleOnPrimary},
		{ButtonVariantMuted, RoleSurfaceElevated, RoleTextSecondary},
	}

	for _, tc := range cases {
		bg, fg := tc.variant.fill()
		assert.Equal(t, tc.bg(h), bg(h))
		assert.Equal(t, tc.fg(h), fg(h))
	}
}

func TestButtonBuilderState(t *testing.T) {
	t.Parallel()

	button := SecondaryButton("Cancel").WithDisabled(true)
	require.Equal(t, "Cancel", button.Label())
	assert.True(t, button.IsDisabled())
}

func TestButtonFollowsScopedTheme(t *testing.T) {
	t.Parallel()

	brand := theme.NewHandle(theme.Light())
	ctx := NewContext(theme.NewProvider(theme.Light()))

	// The rendered label is present regardless of scope; fills follow roles.
	view := PrimaryButton("Go").ViewWithContext(ctx)
	assert.True(t, strings.Contains(view, "Go"))
	assert.Equal(t, brand.Primary(), RolePrimary(ctx.Theme))
}
