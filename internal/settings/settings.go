package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	appName          = "sex-cli"
	settingsFileName = "settings.toml"

	// DefaultRefreshSeconds is the monitor poll interval when the
	// preferences file does not override it.
	DefaultRefreshSeconds = 5
)

// Settings holds non-secret user preferences. Anything secret belongs in
// the keychain, never here.
type Settings struct {
	DefaultOrganization string `toml:"default_organization"`
	BaseURL             string `toml:"base_url"`
	RefreshSeconds      int    `toml:"refresh_seconds"`
}

// Path returns the location of the preferences file,
// <user config dir>/sex-cli/settings.toml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, appName, settingsFileName), nil
}

// Load reads the preferences file. A missing file yields defaults.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads preferences from an explicit path.
func LoadFrom(path string) (*Settings, error) {
	settings := &Settings{RefreshSeconds: DefaultRefreshSeconds}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if _, err := toml.DecodeFile(path, settings); err != nil {
		return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
	}
	if settings.RefreshSeconds <= 0 {
		settings.RefreshSeconds = DefaultRefreshSeconds
	}
	return settings, nil
}

// Save writes the preferences to an explicit path, creating the parent
// directory if needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings file %s: %w", path, err)
	}
	return nil
}
