package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glintui/glint/internal/tui"
)

func newRootCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "Glint manages terminal color themes for glint-based apps",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: open the picker when attached to a terminal.
			if isInteractive() {
				return runPicker(app)
			}
			return cmd.Help()
		},
	}

	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runPicker(app *AppContext) error {
	model := tui.NewModel(app.Manager)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("theme picker failed: %w", err)
	}

	picker, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if err := picker.Err(); err != nil {
		return err
	}
	if picker.Applied() {
		fmt.Printf("Theme set to %s\n", app.Manager.Current().Name())
	}
	return nil
}
