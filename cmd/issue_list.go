package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/ui"
)

var issueListCmd = &cobra.Command{
	Use:   "list <org>",
	Short: "List unresolved issues",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName := args[0]
		Logger.Infof("Listing issues for organization: %s", orgName)

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

		spinner, cleanup := startSpinner("Fetching issues...")
		defer cleanup()

		issues, err := client.ListIssues(org.Slug, issueProject)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to list issues: " + err.Error()
			return nil
		}

		if len(issues) == 0 {
			spinner.FinalMSG = "No issues found"
			return nil
		}

		lines := ""
		for _, issue := range issues {
			lines += "  " + ui.Highlight.Sprint(issue.ID) + ": " + issue.Title + " " + ui.Muted.Sprint(issue.Status) + "\n"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Issues in " + orgName + "/" + issueProject + ":\n" + lines
		return nil
	},
}
