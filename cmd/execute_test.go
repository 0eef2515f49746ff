package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	logger "github.com/amkisko/sex-cli/internal/logging"
	"github.com/amkisko/sex-cli/internal/settings"
	"github.com/amkisko/sex-cli/internal/store"
)

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	SetLogger(logger.Logger{})

	root := GetRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	root.SetArgs(nil)
	return out.String(), err
}

// redirectConfigDir points the user config directory at a temp dir. Skips
// on platforms where os.UserConfigDir ignores XDG_CONFIG_HOME.
func redirectConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := store.ConfigPath()
	if err != nil || !strings.HasPrefix(path, dir) {
		t.Skip("user config dir does not follow XDG_CONFIG_HOME on this platform")
	}
	return dir
}

func TestOrgAddExecute(t *testing.T) {
	redirectConfigDir(t)

	out, err := runCommand(t, "org", "add", "Acme Corp", "acme-corp")
	if err != nil {
		t.Fatalf("org add failed: %v", err)
	}
	if !strings.Contains(out, "Added organization: Acme Corp") {
		t.Errorf("unexpected output: %q", out)
	}
	// The slug renders through the muted formatter in either color mode.
	if !strings.Contains(out, "acme-corp") {
		t.Errorf("output should include the slug, got %q", out)
	}

	path, err := store.ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file was not written: %v", err)
	}
	if !strings.Contains(string(content), "acme-corp") {
		t.Errorf("config file missing the organization slug: %s", content)
	}

	out, err = runCommand(t, "org", "list")
	if err != nil {
		t.Fatalf("org list failed: %v", err)
	}
	if !strings.Contains(out, "Acme Corp") {
		t.Errorf("org list should show the added organization, got %q", out)
	}
}

func TestOrgListEmptyExecute(t *testing.T) {
	redirectConfigDir(t)

	out, err := runCommand(t, "org", "list")
	if err != nil {
		t.Fatalf("org list failed: %v", err)
	}
	if !strings.Contains(out, "No organizations configured") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestConfigSetExecute(t *testing.T) {
	redirectConfigDir(t)

	out, err := runCommand(t, "config", "set", "refresh_seconds", "7")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(out, "Set refresh_seconds to 7") {
		t.Errorf("unexpected output: %q", out)
	}

	path, err := settings.Path()
	if err != nil {
		t.Fatalf("settings.Path failed: %v", err)
	}
	prefs, err := settings.LoadFrom(path)
	if err != nil {
		t.Fatalf("settings were not written: %v", err)
	}
	if prefs.RefreshSeconds != 7 {
		t.Errorf("refresh_seconds = %d, want 7", prefs.RefreshSeconds)
	}

	out, err = runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "7") || !strings.Contains(out, "refresh_seconds") {
		t.Errorf("config show should include the saved value, got %q", out)
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	redirectConfigDir(t)

	out, err := runCommand(t, "config", "set", "mystery", "1")
	if err != nil {
		t.Fatalf("config set returned error: %v", err)
	}
	if !strings.Contains(out, "Unknown key") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestConfigSetRejectsBadRefresh(t *testing.T) {
	redirectConfigDir(t)

	if _, err := runCommand(t, "config", "set", "refresh_seconds", "zero"); err == nil {
		t.Error("non-numeric refresh_seconds should fail")
	}
	if _, err := runCommand(t, "config", "set", "refresh_seconds", "-3"); err == nil {
		t.Error("negative refresh_seconds should fail")
	}
}
