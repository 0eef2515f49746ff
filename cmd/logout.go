package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/ui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout <org>",
	Short: "Remove an organization's auth token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName := args[0]

		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		org, ok := config.Organization(orgName)
		if !ok {
			cmd.Printf("%s Organization %s not found\n", ui.Error.Sprint("✗"), ui.Highlight.Sprint(orgName))
			return nil
		}

		Logger.WarnfAlways("Removing the stored token for %s; you will need to log in again to use it", orgName)
		if err := org.ClearAuthToken(); err != nil {
			return Logger.ErrorfAndReturn("Failed to remove auth token: %v", err)
		}

		cmd.Printf("%s Logged out of organization: %s\n", ui.Success.Sprint("✓"), orgName)
		return nil
	},
}
