// ABOUTME: Data and config directory resolution for the blood pressure tracker
// ABOUTME: XDG Base Directory lookups with home-directory fallbacks
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "bloodpressure"

// DataHome returns XDG_DATA_HOME or fallback to ~/.local/share.
// Fails when no home directory can be determined.
func DataHome() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve data directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// ConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config.
func ConfigHome() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve config directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}
