package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/glintui/glint/pkg/theme"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the active theme",
	}

	cmd.AddCommand(newThemeSetCmd(app))
	cmd.AddCommand(newThemeListCmd(app))
	cmd.AddCommand(newThemeShowCmd(app))
	cmd.AddCommand(newThemeToggleCmd(app))
	cmd.AddCommand(newThemeCycleCmd(app))
	cmd.AddCommand(newThemeResetCmd(app))

	return cmd
}

func newThemeSetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <light|dark|system|name>",
		Short: "Activate a built-in mode or a registered custom theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			switch name {
			case theme.LightName, theme.DarkName, theme.SystemName:
				mode, err := theme.ParseMode(name)
				if err != nil {
					return err
				}
				app.Manager.SetMode(mode)
			default:
				h, ok := app.Manager.ThemeNamed(name)
				if !ok {
					return fmt.Errorf("unknown theme %q; place a definition in %s or run 'glint theme list'", name, app.ThemesDir)
				}
				if err := app.Manager.SetTheme(h); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", app.Manager.Current().Name())
			return nil
		},
	}
}

func newThemeListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sel := app.Manager.Selection()

			marker := func(active bool) string {
				if active {
					return "*"
				}
				return " "
			}

			fmt.Fprintln(out, "Built-in:")
			for _, mode := range []theme.Mode{theme.ModeLight, theme.ModeDark, theme.ModeSystem} {
				active := sel.CustomThemeName == "" && sel.Mode == mode
				fmt.Fprintf(out, " %s %s\n", marker(active), mode)
			}

			names := app.Manager.ThemeNames()
			if len(names) == 0 {
				return nil
			}

			fmt.Fprintln(out, "Custom:")
			for _, name := range names {
				fmt.Fprintf(out, " %s %s\n", marker(sel.CustomThemeName == name), name)
			}
			return nil
		},
	}
}

func newThemeShowCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active theme and its color roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			h := app.Manager.Current()
			sel := app.Manager.Selection()

			fmt.Fprintf(out, "Active theme: %s\n", h.Name())
			if sel.CustomThemeName == "" {
				fmt.Fprintf(out, "Mode: %s\n", sel.Mode)
			}
			fmt.Fprintf(out, "Settings: %s\n\n", app.SettingsPath)

			roles := []struct {
				name  string
				color lipgloss.TerminalColor
			}{
				{"primary", h.Primary()},
				{"primaryVariant", h.PrimaryVariant()},
				{"secondary", h.Secondary()},
				{"secondaryVariant", h.SecondaryVariant()},
				{"background", h.Background()},
				{"backgroundSecondary", h.BackgroundSecondary()},
				{"surface", h.Surface()},
				{"surfaceElevated", h.SurfaceElevated()},
				{"success", h.Success()},
				{"warning", h.Warning()},
				{"error", h.Error()},
				{"info", h.Info()},
				{"textPrimary", h.TextPrimary()},
				{"textSecondary", h.TextSecondary()},
				{"textTertiary", h.TextTertiary()},
				{"border", h.Border()},
				{"divider", h.Divider()},
				{"onPrimary", h.OnPrimary()},
				{"onSecondary", h.OnSecondary()},
				{"onBackground", h.OnBackground()},
				{"onSurface", h.OnSurface()},
			}

			for _, role := range roles {
				swatch := lipgloss.NewStyle().Foreground(role.color).Render("██████")
				fmt.Fprintf(out, "%s %-20s %s\n", swatch, role.name, colorLabel(role.color))
			}
			return nil
		},
	}
}

func newThemeToggleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Manager.ToggleTheme()
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", app.Manager.Mode())
			return nil
		},
	}
}

func newThemeCycleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Cycle through light, dark and system modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Manager.CycleMode()
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", app.Manager.Mode())
			return nil
		},
	}
}

func newThemeResetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Return to the system default",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Manager.ResetToDefault()
			fmt.Fprintln(cmd.OutOrStdout(), "Theme reset to system")
			return nil
		},
	}
}

// colorLabel renders a terminal color as text for the show command.
func colorLabel(c lipgloss.TerminalColor) string {
	switch col := c.(type) {
	case lipgloss.Color:
		return string(col)
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("%s / %s", col.Light, col.Dark)
	default:
		return fmt.Sprintf("%v", c)
	}
}
