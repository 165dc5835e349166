// Package yaml loads wikisect configuration from YAML files.
package yaml

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fwojciec/wikisect"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// current directory.
const DefaultConfigFile = ".wikisect.yaml"

// XDGConfigFile is the configuration file path relative to the XDG config home.
const XDGConfigFile = "wikisect/config.yaml"

// LoadConfig reads path and overlays its values on wikisect.DefaultConfig.
// Keys missing from the file keep their defaults. A missing file returns
// ENOTFOUND.
func LoadConfig(path string) (*wikisect.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wikisect.Errorf(wikisect.ENOTFOUND, "configuration file %s not found", path)
		}
		return nil, err
	}

	cfg := wikisect.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, wikisect.Errorf(wikisect.EINVALID, "invalid config file %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .wikisect.yaml in the current directory
// 3. Look for wikisect/config.yaml under the XDG config directories
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	if path, err := xdg.SearchConfigFile(XDGConfigFile); err == nil {
		return path
	}

	return ""
}
