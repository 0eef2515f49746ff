package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/ui"
)

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		names := config.OrganizationNames()
		if len(names) == 0 {
			cmd.Println("No organizations configured")
			return nil
		}

		cmd.Println("Organizations:")
		for _, name := range names {
			org, _ := config.Organization(name)

			authStatus := ui.Warning.Sprint("not authenticated")
			if _, found, err := org.AuthToken(); err != nil {
				Logger.WarnfUser("Could not read the auth token for %s: %v", name, err)
			} else if found {
				authStatus = ui.Success.Sprint("authenticated")
			}
			cmd.Printf("  %s %s - %s\n", org.Name, ui.Muted.Sprint(org.Slug), authStatus)

			for slug := range org.Projects {
				projectName, found, err := org.Project(slug)
				if err != nil {
					Logger.WarnfUser("Cached name for project %s could not be decrypted: %v", slug, err)
					continue
				}
				if found {
					cmd.Printf("    - %s %s\n", projectName, ui.Muted.Sprint(slug))
				}
			}
		}
		return nil
	},
}
