package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/ui"
)

var orgAddCmd = &cobra.Command{
	Use:   "add <name> <slug>",
	Short: "Add an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, slug := args[0], args[1]
		Logger.Infof("Adding organization %s (%s)", name, slug)

		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		config.AddOrganization(name, slug)
		if err := config.Save(); err != nil {
			return Logger.ErrorfAndReturn("Failed to save config: %v", err)
		}

		cmd.Printf("%s Added organization: %s %s\n", ui.Success.Sprint("✓"), name, ui.Muted.Sprint(slug))
		return nil
	},
}
