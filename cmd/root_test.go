package cmd

import (
	"testing"
)

func find(t *testing.T, args ...string) string {
	t.Helper()
	cmd, _, err := RootCmd.Find(args)
	if err != nil {
		t.Fatalf("command %v not found: %v", args, err)
	}
	return cmd.Name()
}

func TestCommandTree(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"org", "list"}, "list"},
		{[]string{"org", "add"}, "add"},
		{[]string{"issue", "list"}, "list"},
		{[]string{"issue", "view"}, "view"},
		{[]string{"login"}, "login"},
		{[]string{"logout"}, "logout"},
		{[]string{"project", "list"}, "list"},
		{[]string{"project", "info"}, "info"},
		{[]string{"monitor"}, "monitor"},
		{[]string{"config", "show"}, "show"},
		{[]string{"config", "set"}, "set"},
	}
	for _, tt := range tests {
		if got := find(t, tt.args...); got != tt.want {
			t.Errorf("Find(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestOrgAddRequiresNameAndSlug(t *testing.T) {
	if err := orgAddCmd.Args(orgAddCmd, []string{"Test Org"}); err == nil {
		t.Error("org add should reject a single argument")
	}
	if err := orgAddCmd.Args(orgAddCmd, []string{"Test Org", "test-org"}); err != nil {
		t.Errorf("org add should accept name and slug: %v", err)
	}
	if err := orgAddCmd.Args(orgAddCmd, []string{"a", "b", "c"}); err == nil {
		t.Error("org add should reject extra arguments")
	}
}

func TestOrgListTakesNoArgs(t *testing.T) {
	if err := orgListCmd.Args(orgListCmd, []string{"extra"}); err == nil {
		t.Error("org list should reject arguments")
	}
}

func TestLoginRequiresOrg(t *testing.T) {
	if err := loginCmd.Args(loginCmd, nil); err == nil {
		t.Error("login should require an organization")
	}
	if err := loginCmd.Args(loginCmd, []string{"test-org"}); err != nil {
		t.Errorf("login should accept one organization: %v", err)
	}
}

func TestLoginHasBrowserFlag(t *testing.T) {
	if loginCmd.Flags().Lookup("browser") == nil {
		t.Error("login should have a --browser flag")
	}
}

func TestProjectListHasMatchFlag(t *testing.T) {
	if projectListCmd.Flags().Lookup("match") == nil {
		t.Error("project list should have a --match flag")
	}
}

func TestIssueCommandsShareProjectFlag(t *testing.T) {
	if issueCmd.PersistentFlags().Lookup("project") == nil {
		t.Fatal("issue should have a persistent --project flag")
	}
	if got := issueCmd.PersistentFlags().Lookup("project").DefValue; got != "default" {
		t.Errorf("--project default = %q, want %q", got, "default")
	}
}

func TestIssueViewRequiresOrgAndID(t *testing.T) {
	if err := issueViewCmd.Args(issueViewCmd, []string{"test-org"}); err == nil {
		t.Error("issue view should require an issue id")
	}
	if err := issueViewCmd.Args(issueViewCmd, []string{"test-org", "12345"}); err != nil {
		t.Errorf("issue view should accept org and id: %v", err)
	}
}

func TestMonitorArgsAndFlags(t *testing.T) {
	if err := monitorCmd.Args(monitorCmd, nil); err == nil {
		t.Error("monitor should require a project slug")
	}
	if err := monitorCmd.Args(monitorCmd, []string{"web-app"}); err != nil {
		t.Errorf("monitor should accept one project slug: %v", err)
	}
	if monitorCmd.Flags().Lookup("org") == nil {
		t.Error("monitor should have an --org flag")
	}
}

func TestRootHasVerbosityFlags(t *testing.T) {
	if RootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("root should have a persistent --verbose flag")
	}
	if RootCmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("root should have a persistent --debug flag")
	}
}
