package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/dashboard"
	"github.com/amkisko/sex-cli/internal/ui"
)

var issueViewCmd = &cobra.Command{
	Use:   "view <org> <id>",
	Short: "View issue details",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName, issueID := args[0], args[1]
		Logger.Infof("Viewing issue %s in organization: %s", issueID, orgName)

		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		org, ok := config.Organization(orgName)
		if !ok {
			cmd.Printf("%s Organization %s not found\n", ui.Error.Sprint("✗"), ui.Highlight.Sprint(orgName))
			return nil
		}

		client, err := authenticatedClient(org)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		spinner, cleanup := startSpinner("Fetching issue...")

		issues, err := client.ListIssues(org.Slug, issueProject)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to list issues: " + err.Error()
			cleanup()
			return nil
		}

		for _, issue := range issues {
			if issue.ID == issueID {
				// Stop the spinner before the viewer takes over the screen.
				cleanup()
				return dashboard.NewViewer(issue, 0).Run()
			}
		}

		spinner.FinalMSG = ui.Error.Sprint("✗") + " Issue " + issueID + " not found in " + orgName + "/" + issueProject
		cleanup()
		return nil
	},
}
