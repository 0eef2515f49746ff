package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName        = "sex-cli"
	configFileName = "config.json"
)

// ConfigPath returns the path of the on-disk configuration document,
// <user config dir>/sex-cli/config.json.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}
