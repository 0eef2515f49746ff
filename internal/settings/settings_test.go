package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNonExistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	settings, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if settings.DefaultOrganization != "" {
		t.Errorf("expected empty default organization, got %q", settings.DefaultOrganization)
	}
	if settings.RefreshSeconds != DefaultRefreshSeconds {
		t.Errorf("expected default refresh of %d, got %d", DefaultRefreshSeconds, settings.RefreshSeconds)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	settings := &Settings{
		DefaultOrganization: "acme",
		BaseURL:             "https://sentry.example.com/api/0",
		RefreshSeconds:      10,
	}
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.DefaultOrganization != "acme" {
		t.Errorf("expected default organization %q, got %q", "acme", loaded.DefaultOrganization)
	}
	if loaded.BaseURL != settings.BaseURL {
		t.Errorf("expected base URL %q, got %q", settings.BaseURL, loaded.BaseURL)
	}
	if loaded.RefreshSeconds != 10 {
		t.Errorf("expected refresh of 10, got %d", loaded.RefreshSeconds)
	}
}

func TestLoadClampsRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("refresh_seconds = -3\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.RefreshSeconds != DefaultRefreshSeconds {
		t.Errorf("non-positive refresh should fall back to %d, got %d", DefaultRefreshSeconds, loaded.RefreshSeconds)
	}
}
