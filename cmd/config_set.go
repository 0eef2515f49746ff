package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/settings"
	"github.com/amkisko/sex-cli/internal/ui"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a preference",
	Long: `Changes one preference and writes the settings file.

Supported keys:
  default_organization   organization used when none is given
  base_url               API root, for self-hosted installs
  refresh_seconds        monitor dashboard poll interval`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		path, err := settings.Path()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to locate settings file: %v", err)
		}

		prefs, err := settings.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
		}

		switch key {
		case "default_organization":
			prefs.DefaultOrganization = value
		case "base_url":
			prefs.BaseURL = value
		case "refresh_seconds":
			seconds, err := strconv.Atoi(value)
			if err != nil || seconds <= 0 {
				return Logger.ErrorfAndReturn("refresh_seconds must be a positive integer, got %q", value)
			}
			prefs.RefreshSeconds = seconds
		default:
			cmd.Printf("%s Unknown key %s\n", ui.Error.Sprint("✗"), ui.Highlight.Sprint(key))
			cmd.Printf("%s Known keys: default_organization, base_url, refresh_seconds\n", ui.Info.Sprint("→"))
			return nil
		}

		if err := prefs.Save(path); err != nil {
			return Logger.ErrorfAndReturn("Failed to save settings: %v", err)
		}

		cmd.Printf("%s Set %s to %s\n", ui.Success.Sprint("✓"), key, value)
		return nil
	},
}
