package main

import (
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/themefile"
	"github.com/glintui/glint/pkg/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Manager *theme.Manager
	Logger  *logger.Logger

	// SettingsPath and ThemesDir are resolved once so subcommands report
	// consistent locations.
	SettingsPath string
	ThemesDir    string
}

// newAppContext wires the settings store, loads custom theme definitions and
// rehydrates the manager. Definition files that fail to parse are logged and
// skipped so one bad file cannot take the CLI down.
func newAppContext(log *logger.Logger) (*AppContext, error) {
	settingsPath, err := theme.DefaultSettingsPath("glint")
	if err != nil {
		return nil, err
	}
	themesDir := filepath.Join(filepath.Dir(settingsPath), "themes")

	manager := theme.NewManager(theme.Options{
		Store:  theme.NewFileStore(settingsPath),
		Logger: log,
	})

	paths, err := themefile.Files(themesDir)
	if err != nil {
		log.WithFields(map[string]any{"dir": themesDir}).Error(err, "failed to list theme definitions")
	}
	for _, path := range paths {
		def, err := themefile.Parse(path)
		if err != nil {
			log.WithFields(map[string]any{"file": path}).Error(err, "skipping invalid theme definition")
			continue
		}
		if err := manager.RegisterTheme(def.Handle()); err != nil {
			log.WithFields(map[string]any{"theme": def.Name}).Error(err, "failed to register theme")
		}
	}

	return &AppContext{
		Manager:      manager,
		Logger:       log,
		SettingsPath: settingsPath,
		ThemesDir:    themesDir,
	}, nil
}

// isInteractive reports whether stdout is attached to a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
