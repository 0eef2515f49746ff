package cmd

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/ui"
)

var projectMatch string

func init() {
	projectListCmd.Flags().StringVar(&projectMatch, "match", "", "only show projects whose slug matches this glob")
}

var projectListCmd = &cobra.Command{
	Use:   "list <org>",
	Short: "List an organization's projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName := args[0]
		Logger.Infof("Listing projects for organization: %s", orgName)

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

		spinner, cleanup := startSpinner("Fetching projects...")
		defer cleanup()

		projects, err := client.ListProjects(org.Slug)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to list projects: " + err.Error()
			return nil
		}

		shown := 0
		lines := ""
		for _, project := range projects {
			if projectMatch != "" {
				matched, err := doublestar.Match(projectMatch, project.Slug)
				if err != nil {
					return Logger.ErrorfAndReturn("Invalid --match pattern %q: %v", projectMatch, err)
				}
				if !matched {
					continue
				}
			}
			shown++
			lines += "  " + project.Name + " " + ui.Muted.Sprint(project.Slug) + "\n"

			// Cache slug to name so monitor can resolve this project offline.
			if err := config.CacheProject(orgName, project.Slug, project.Name); err != nil {
				Logger.Warnf("Failed to cache project %s: %v", project.Slug, err)
			}
		}

		if shown == 0 {
			spinner.FinalMSG = "No projects found"
			return nil
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Projects in " + orgName + ":\n" + lines
		return nil
	},
}
