package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/ui"
	"github.com/amkisko/sex-cli/internal/utils"
)

var loginBrowser bool

func init() {
	loginCmd.Flags().BoolVar(&loginBrowser, "browser", false, "authenticate through the browser instead of pasting a token")
}

var loginCmd = &cobra.Command{
	Use:   "login <org>",
	Short: "Store an auth token for an organization",
	Long: `Stores an auth token for an organization in the operating system keychain.

By default the token is read from an echo-disabled prompt. With --browser the
OAuth flow runs instead: a local callback server starts, the system browser
opens on the authorization page, and the token is captured automatically.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgName := args[0]
		Logger.Infof("Starting login for organization: %s", orgName)

		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		org, ok := config.Organization(orgName)
		if !ok {
			cmd.Printf("%s Organization %s not found\n", ui.Error.Sprint("✗"), ui.Highlight.Sprint(orgName))
			cmd.Printf("%s Add it first with %s\n", ui.Info.Sprint("→"), ui.Code.Sprint("sex-cli org add"))
			return nil
		}

		var token string
		if loginBrowser {
			cmd.Println("Opening browser for authentication...")
			client := newClient()
			token, err = client.LoginWithBrowser()
			if err != nil {
				return Logger.ErrorfAndReturn("Browser login failed: %v", err)
			}
		} else {
			if !utils.IsTerminal() {
				return Logger.ErrorfAndReturn("Cannot prompt for a token: stdin is not a terminal (use --browser)")
			}
			secret, err := utils.ReadSecret("Auth token: ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read token: %v", err)
			}
			token = strings.TrimSpace(string(secret))
			if token == "" {
				return Logger.ErrorfAndReturn("Empty token")
			}
		}

		// Verify the token against the API before persisting it.
		client := newClient()
		client.Login(token)
		if _, err := client.ListOrganizations(); err != nil {
			cmd.Printf("%s Token was rejected: %v\n", ui.Error.Sprint("✗"), err)
			return nil
		}

		if err := org.SetAuthToken(token); err != nil {
			return Logger.ErrorfAndReturn("Failed to store auth token: %v", err)
		}

		cmd.Printf("%s Successfully logged in to organization: %s\n", ui.Success.Sprint("✓"), orgName)
		return nil
	},
}
