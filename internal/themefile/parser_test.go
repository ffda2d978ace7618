package themefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	glinterrors "github.com/glintui/glint/pkg/errors"
	"github.com/glintui/glint/pkg/theme"
)

const validYAML = `name: nord
mode: dark
colors:
  primary: "#88c0d0"
  secondary: "#b48ead"
  background: "#2e3440"
  surface: "#3b4252"
  success: "#a3be8c"
  warning: "#ebcb8b"
  error: "#bf616a"
  info: "#81a1c1"
  textPrimary: "#eceff4"
  textSecondary: "#d8dee9"
  textTertiary: "#7b88a1"
  border: "#4c566a"
  divider: "#434c5e"
`

func writeDefinition(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseValidDefinition(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, t.TempDir(), "nord.yaml", validYAML)

	def, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "nord", def.Name)
	require.Equal(t, "dark", def.Mode)
	require.Equal(t, "#88c0d0", def.Colors.Primary)

	h := def.Handle()
	require.Equal(t, "nord", h.Name())
	mode, ok := h.PreferredMode()
	require.True(t, ok)
	require.Equal(t, theme.ModeDark, mode)
	require.Equal(t, lipgloss.Color("#2e3440"), h.Background())
}

func TestParseAppliesOptionalOverrides(t *testing.T) {
	t.Parallel()

	contents := validYAML + `  onPrimary: "#2e3440"
  surfaceElevated: "#434c5e"
`
	path := writeDefinition(t, t.TempDir(), "nord.yaml", contents)

	def, err := Parse(path)
	require.NoError(t, err)

	h := def.Handle()
	require.Equal(t, lipgloss.Color("#2e3440"), h.OnPrimary())
	require.Equal(t, lipgloss.Color("#434c5e"), h.SurfaceElevated())
	// Unspecified derived roles keep their defaults.
	require.Equal(t, h.Primary(), h.PrimaryVariant())
}

func TestParseInvalidYAMLReportsLine(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, t.TempDir(), "broken.yaml", "name: [oops\n")

	_, err := Parse(path)
	require.Error(t, err)

	var parseErr *glinterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var parseErr *glinterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseRejectsMissingColors(t *testing.T) {
	t.Parallel()

	contents := `name: sparse
colors:
  primary: "#88c0d0"
`
	path := writeDefinition(t, t.TempDir(), "sparse.yaml", contents)

	_, err := Parse(path)
	require.Error(t, err)

	var valErr *glinterrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestValidateRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Definition)
		field  string
	}{
		{
			name:   "built-in name reserved",
			mutate: func(d *Definition) { d.Name = theme.DarkName },
			field:  "name",
		},
		{
			name:   "invalid name characters",
			mutate: func(d *Definition) { d.Name = "My Theme!" },
		},
		{
			name:   "invalid mode",
			mutate: func(d *Definition) { d.Mode = "midnight" },
		},
		{
			name:   "non-hex color",
			mutate: func(d *Definition) { d.Colors.Primary = "blue" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			def := validDefinition()
			tc.mutate(def)

			err := Validate(def)
			require.Error(t, err)

			var valErr *glinterrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			if tc.field != "" {
				require.Equal(t, tc.field, valErr.Field)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDefinition(t, dir, "nord.yaml", validYAML)
	writeDefinition(t, dir, "aurora.yml", `name: aurora
colors:
  primary: "#ff6ac1"
  secondary: "#57c7ff"
  background: "#282a36"
  surface: "#3a3d4d"
  success: "#5af78e"
  warning: "#f3f99d"
  error: "#ff5c57"
  info: "#9aedfe"
  textPrimary: "#f1f1f0"
  textSecondary: "#b9b9b8"
  textTertiary: "#686868"
  border: "#606580"
  divider: "#43454f"
`)
	writeDefinition(t, dir, "notes.txt", "not a theme")

	handles, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, handles, 2)
	// Sorted by file name.
	require.Equal(t, "aurora", handles[0].Name())
	require.Equal(t, "nord", handles[1].Name())

	_, ok := handles[0].PreferredMode()
	require.False(t, ok, "definition without a mode follows the system")
}

func TestLoadDirMissingDirectory(t *testing.T) {
	t.Parallel()

	handles, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Empty(t, handles)
}

func TestLoadDirAbortsOnBadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDefinition(t, dir, "bad.yaml", "name: [oops\n")

	_, err := LoadDir(dir)
	require.Error(t, err)
}

func validDefinition() *Definition {
	return &Definition{
		Name: "nord",
		Mode: "dark",
		Colors: Colors{
			Primary:       "#88c0d0",
			Secondary:     "#b48ead",
			Background:    "#2e3440",
			Surface:       "#3b4252",
			Success:       "#a3be8c",
			Warning:       "#ebcb8b",
			Error:         "#bf616a",
			Info:          "#81a1c1",
			TextPrimary:   "#eceff4",
			TextSecondary: "#d8dee9",
			TextTertiary:  "#7b88a1",
			Border:        "#4c566a",
			Divider:       "#434c5e",
		},
	}
}
