package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/ui"
)

var projectInfoCmd = &cobra.Command{
	Use:   "info <org> <project>",
	Short: "Show a project summary",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName, projectSlug := args[0], args[1]
		Logger.Infof("Fetching info for project %s in organization: %s", projectSlug, orgName)

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

		spinner, cleanup := startSpinner("Fetching project info...")
		defer cleanup()

		info, err := client.ProjectInfo(org.Slug, projectSlug)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to fetch project info: " + err.Error()
			return nil
		}

		lines := ""
		for _, field := range info {
			lines += "  " + ui.Info.Sprint(field.Label+":") + " " + field.Value + "\n"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Project " + projectSlug + ":\n" + lines
		return nil
	},
}
