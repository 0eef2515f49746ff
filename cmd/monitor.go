package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amkisko/sex-cli/internal/dashboard"
	"github.com/amkisko/sex-cli/internal/sentry"
	"github.com/amkisko/sex-cli/internal/store"
	"github.com/amkisko/sex-cli/internal/ui"
)

var monitorOrg string

func init() {
	monitorCmd.Flags().StringVar(&monitorOrg, "org", "", "organization the project belongs to")
}

var monitorCmd = &cobra.Command{
	Use:   "monitor <project>",
	Short: "Watch a project's issues in real time",
	Long: `Opens a live dashboard showing the project's busiest unresolved issues,
refreshed on an interval.

With --org the project is looked up in that organization directly. Without it
every logged-in organization is searched: the local cache first, then a live
project listing, and any project found live is cached for next time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectSlug := args[0]
		Logger.Infof("Starting monitor for project: %s", projectSlug)

		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		if monitorOrg != "" {
			org, ok := config.Organization(monitorOrg)
			if !ok {
				cmd.Printf("%s Organization %s not found\n", ui.Error.Sprint("✗"), ui.Highlight.Sprint(monitorOrg))
				cmd.Printf("%s Add it first with %s\n", ui.Info.Sprint("→"), ui.Code.Sprint("sex-cli org add"))
				return nil
			}
			client, err := authenticatedClient(org)
			if err != nil {
				return Logger.ErrorfAndReturn("%v", err)
			}
			return startMonitor(cmd, client, org, projectSlug)
		}

		matches, err := resolveProject(config, projectSlug)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		switch len(matches) {
		case 0:
			cmd.Printf("Project %s not found in any organization\n", ui.Highlight.Sprint(projectSlug))
			return nil
		case 1:
			return startMonitor(cmd, matches[0].client, matches[0].org, projectSlug)
		default:
			cmd.Printf("Project %s exists in multiple organizations:\n", ui.Highlight.Sprint(projectSlug))
			for _, match := range matches {
				cmd.Printf("  %s %s\n", match.org.Name, ui.Muted.Sprint(match.org.Slug))
			}
			cmd.Printf("%s Pick one with %s\n", ui.Info.Sprint("→"), ui.Code.Sprint("sex-cli monitor "+projectSlug+" --org <name>"))
			return nil
		}
	},
}

type monitorMatch struct {
	org    *store.Organization
	client *sentry.Client
}

// resolveProject locates the project across every logged-in organization,
// consulting the local cache before the API. Live finds are cached.
func resolveProject(config *store.Config, projectSlug string) ([]monitorMatch, error) {
	var matches []monitorMatch

	_, cleanup := startSpinner("Locating project...")
	defer cleanup()

	for _, candidate := range config.FindProject(projectSlug) {
		org := candidate.Org

		token, found, err := org.AuthToken()
		if err != nil {
			Logger.WarnfUser("Could not read the auth token for %s: %v", org.Name, err)
			continue
		}
		if !found {
			Logger.Debugf("Skipping %s: not logged in", org.Name)
			continue
		}

		client := newClient()
		client.Login(token)

		if candidate.Cached {
			Logger.Debugf("Found %s in %s's cache", projectSlug, org.Name)
			matches = append(matches, monitorMatch{org: org, client: client})
			continue
		}

		projects, err := client.ListProjects(org.Slug)
		if err != nil {
			Logger.Warnf("Failed to list projects for %s: %v", org.Name, err)
			continue
		}
		for _, project := range projects {
			if project.Slug == projectSlug {
				if err := config.CacheProject(org.Name, project.Slug, project.Name); err != nil {
					Logger.Warnf("Failed to cache project %s: %v", project.Slug, err)
				}
				matches = append(matches, monitorMatch{org: org, client: client})
				break
			}
		}
	}

	return matches, nil
}

func startMonitor(cmd *cobra.Command, client *sentry.Client, org *store.Organization, projectSlug string) error {
	if name, found, err := org.Project(projectSlug); err == nil && found {
		cmd.Printf("Found project: %s (%s)\n", name, projectSlug)
	}
	cmd.Printf("Starting monitor for organization: %s project: %s\n", org.Slug, projectSlug)
	return dashboard.NewMonitor(client, org.Slug, projectSlug, refreshInterval()).Run()
}
