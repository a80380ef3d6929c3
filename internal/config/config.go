// ABOUTME: Optional config file loading for the blood pressure tracker
// ABOUTME: Reads config.toml and resolves the backing-file path
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// dataFileName is the backing file inside the data directory.
const dataFileName = "data.csv"

type Config struct {
	DataDir string `toml:"data_dir"`
}

// Load reads $XDG_CONFIG_HOME/bloodpressure/config.toml if it exists.
// A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	var cfg Config

	configHome, err := ConfigHome()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(configHome, appDir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DataPaths resolves the data directory and the backing-file path.
// The config file's data_dir takes precedence over the XDG location.
func (c *Config) DataPaths() (string, string, error) {
	dir := c.DataDir
	if dir == "" {
		dataHome, err := DataHome()
		if err != nil {
			return "", "", err
		}
		dir = filepath.Join(dataHome, appDir)
	}
	return dir, filepath.Join(dir, dataFileName), nil
}
