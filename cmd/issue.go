package cmd

import (
	"github.com/spf13/cobra"
)

var issueProject string

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "List and inspect issues",
	Long: `Provides commands for listing unresolved issues and viewing one in detail.

Examples:
  # Unresolved issues for an organization's default project
  sex-cli issue list "Acme Corp"

  # Issues for a specific project
  sex-cli issue list "Acme Corp" --project web-app

  # Open one issue in the full-screen viewer
  sex-cli issue view "Acme Corp" 12345`,
}

func init() {
	issueCmd.PersistentFlags().StringVar(&issueProject, "project", "default", "project slug to query")

	issueCmd.AddCommand(issueListCmd)
	issueCmd.AddCommand(issueViewCmd)
}
