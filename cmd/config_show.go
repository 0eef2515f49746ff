package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/sentry"
	"github.com/amkisko/sex-cli/internal/settings"
	"github.com/amkisko/sex-cli/internal/ui"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settings.Path()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to locate settings file: %v", err)
		}

		prefs, err := settings.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
		}

		baseURL := prefs.BaseURL
		if baseURL == "" {
			baseURL = sentry.DefaultBaseURL
		}
		defaultOrg := prefs.DefaultOrganization
		if defaultOrg == "" {
			defaultOrg = ui.Muted.Sprint("not set")
		}

		cmd.Printf("Settings file: %s\n", ui.Path.Sprint(path))
		cmd.Printf("  %s %s\n", ui.Info.Sprint("default_organization:"), defaultOrg)
		cmd.Printf("  %s %s\n", ui.Info.Sprint("base_url:"), baseURL)
		cmd.Printf("  %s %d\n", ui.Info.Sprint("refresh_seconds:"), prefs.RefreshSeconds)
		return nil
	},
}
