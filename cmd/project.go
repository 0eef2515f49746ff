package cmd

import (
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long: `Provides commands for working with an organization's projects.

Project names fetched from the API are cached locally (encrypted) so that
later commands can resolve a project slug without a network round trip.

Examples:
  # List all projects in an organization
  sex-cli project list "Acme Corp"

  # Only projects whose slug matches a glob
  sex-cli project list "Acme Corp" --match 'web-*'`,
}

func init() {
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectInfoCmd)
}
