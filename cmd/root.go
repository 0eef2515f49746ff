package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/amkisko/sex-cli/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// RootCmd is the sex-cli entry command.
	RootCmd = &cobra.Command{
		Use:   "sex-cli",
		Short: "A command-line client for Sentry-style bug tracking",
		Long: `sex-cli is a command-line client for a Sentry-compatible bug tracker.

Organizations and their cached projects live in a local config file; auth
tokens and the project-name encryption key never touch disk and are kept
in the operating system keychain instead.

Usage:
  sex-cli <command> [flags]

Available Commands:
  org        Manage organizations
  login      Store an auth token for an organization
  logout     Remove an organization's auth token
  project    Manage projects
  issue      List and inspect issues
  monitor    Watch a project's issues in real time
  config     Manage user preferences

Run 'sex-cli help <command>' for more details on a specific command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sex-cli with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("sex-cli", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run 'sex-cli --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	RootCmd.AddCommand(orgCmd)
	RootCmd.AddCommand(loginCmd)
	RootCmd.AddCommand(logoutCmd)
	RootCmd.AddCommand(projectCmd)
	RootCmd.AddCommand(issueCmd)
	RootCmd.AddCommand(monitorCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	loginBrowser = false
	projectMatch = ""
	issueProject = ""
	monitorOrg = ""
	resetCobraFlagState()
}

// resetCobraFlagState clears the Changed bit on every flag to prevent test pollution.
func resetCobraFlagState() {
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
		for _, sub := range c.Commands() {
			sub.Flags().VisitAll(func(flag *pflag.Flag) {
				flag.Changed = false
			})
		}
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
