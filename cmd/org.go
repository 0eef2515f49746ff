package cmd

import (
	"github.com/spf13/cobra"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
	Long: `Provides commands for adding and listing the organizations this tool talks to.

Examples:
  # Register an organization by name and Sentry slug
  sex-cli org add "Acme Corp" acme-corp

  # Show all organizations, their auth status, and cached projects
  sex-cli org list`,
}

func init() {
	orgCmd.AddCommand(orgAddCmd)
	orgCmd.AddCommand(orgListCmd)
}
