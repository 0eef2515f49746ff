package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user preferences",
	Long: `Provides commands for reading and changing non-secret user preferences.

Preferences live in a TOML file next to the config document. Secrets are
never stored there; tokens and the encryption key stay in the OS keychain.

Examples:
  # Show the current preferences and where they live
  sex-cli config show

  # Point the client at a self-hosted install
  sex-cli config set base_url https://sentry.example.com/api/0

  # Poll the monitor dashboard every 10 seconds
  sex-cli config set refresh_seconds 10`,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
