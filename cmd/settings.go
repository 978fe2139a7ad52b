package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/errors"
	"github.com/manav03panchal/habitflare/internal/model"
	"github.com/manav03panchal/habitflare/internal/output"
)

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config", "prefs"},
	Short:   "Show or change preferences",
	RunE:    runSettingsShow,
}

// settingsDarkCmd toggles the dark mode preference.
var settingsDarkCmd = &cobra.Command{
	Use:   "dark on|off",
	Short: "Enable or disable dark mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDark,
}

func init() {
	settingsCmd.AddCommand(settingsDarkCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.SettingsResponse{DarkMode: settings.DarkMode})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Settings")
	mode := "off"
	if settings.DarkMode {
		mode = "on"
	}
	cli.Printf("  dark mode: %s\n", mode)
	return nil
}

func runSettingsDark(cmd *cobra.Command, args []string) error {
	var darkMode bool
	switch args[0] {
	case "on", "true", "1":
		darkMode = true
	case "off", "false", "0":
		darkMode = false
	default:
		return errors.NewUserErrorWithField("dark", args[0],
			"Invalid value",
			"Use 'on' or 'off'")
	}

	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	// Partial update: only the named field changes.
	updated := settings.Merge(model.SettingsPatch{DarkMode: &darkMode})
	if err := ctx.SettingsRepo.Update(updated); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.SettingsResponse{DarkMode: updated.DarkMode})
	}

	ctx.CLIFormatter().Success("Dark mode " + args[0])
	return nil
}
