package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/pkg/theme"
)

func testAppContext(t *testing.T) *AppContext {
	t.Helper()

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.yaml")
	log, err := logger.New(logger.Options{Level: "error", Writer: &bytes.Buffer{}})
	require.NoError(t, err)

	return &AppContext{
		Manager: theme.NewManager(theme.Options{
			Store:    theme.NewFileStore(settingsPath),
			Logger:   log,
			Detector: func() bool { return true },
		}),
		Logger:       log,
		SettingsPath: settingsPath,
		ThemesDir:    filepath.Join(dir, "themes"),
	}
}

func runCommand(t *testing.T, app *AppContext, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(app)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestThemeSetMode(t *testing.T) {
	app := testAppContext(t)

	out, err := runCommand(t, app, "theme", "set", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "Theme set to dark")
	require.Equal(t, theme.ModeDark, app.Manager.Mode())

	// The selection survives a restart through the settings file.
	rehydrated := theme.NewManager(theme.Options{
		Store: theme.NewFileStore(app.SettingsPath),
	})
	require.Equal(t, theme.ModeDark, rehydrated.Mode())
}

func TestThemeSetUnknownName(t *testing.T) {
	app := testAppContext(t)

	_, err := runCommand(t, app, "theme", "set", "nonexistent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
}

func TestThemeSetCustomTheme(t *testing.T) {
	app := testAppContext(t)
	require.NoError(t, app.Manager.RegisterTheme(renamed{theme.Light(), "daybreak"}))

	out, err := runCommand(t, app, "theme", "set", "daybreak")
	require.NoError(t, err)
	require.Contains(t, out, "Theme set to daybreak")
	require.Equal(t, "daybreak", app.Manager.Current().Name())
}

func TestThemeList(t *testing.T) {
	app := testAppContext(t)
	require.NoError(t, app.Manager.RegisterTheme(renamed{theme.Dark(), "midnight"}))
	app.Manager.SetMode(theme.ModeLight)

	out, err := runCommand(t, app, "theme", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Built-in:")
	require.Contains(t, out, "* light")
	require.Contains(t, out, "Custom:")
	require.Contains(t, out, "midnight")
}

func TestThemeShow(t *testing.T) {
	app := testAppContext(t)
	app.Manager.SetMode(theme.ModeDark)

	out, err := runCommand(t, app, "theme", "show")
	require.NoError(t, err)
	require.Contains(t, out, "Active theme: dark")
	require.Contains(t, out, "primary")
	require.Contains(t, out, "textTertiary")
	require.Contains(t, out, app.SettingsPath)
}

func TestThemeToggleAndCycle(t *testing.T) {
	app := testAppContext(t)
	app.Manager.SetMode(theme.ModeLight)

	out, err := runCommand(t, app, "theme", "toggle")
	require.NoError(t, err)
	require.Contains(t, out, "Theme set to dark")

	_, err = runCommand(t, app, "theme", "cycle")
	require.NoError(t, err)
	require.Equal(t, theme.ModeSystem, app.Manager.Mode())
}

func TestThemeReset(t *testing.T) {
	app := testAppContext(t)
	app.Manager.SetMode(theme.ModeDark)

	out, err := runCommand(t, app, "theme", "reset")
	require.NoError(t, err)
	require.Contains(t, out, "reset to system")
	require.Equal(t, theme.ModeSystem, app.Manager.Mode())
}

// renamed wraps a theme under a different registry name.
type renamed struct {
	theme.Theme
	name string
}

func (r renamed) Name() string { return r.name }
