package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "PHANTOMID_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "phantomid.yaml"
	// ConfigDirName is the directory under XDG and /etc
	ConfigDirName = "phantomid"

	configBaseName = "config.yaml"
)

// SearchPaths returns the config candidates in priority order. Entries whose
// base directory is unknown (unset XDG_CONFIG_HOME, no home dir) are omitted.
func SearchPaths() []string {
	var paths []string

	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append(paths, p)
	}

	paths = append(paths, ConfigFileName)

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, ConfigDirName, configBaseName))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", ConfigDirName, configBaseName))
	}

	return append(paths, filepath.Join("/etc", ConfigDirName, configBaseName))
}

// FindConfigPath returns the first existing candidate from SearchPaths, or
// an empty string
func FindConfigPath() string {
	for _, p := range SearchPaths() {
		if !fileExists(p) {
			continue
		}
		if p == ConfigFileName {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
		}
		return p
	}
	return ""
}

// DefaultConfigPath is where `phantom-id config init` writes a new file
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDirName, configBaseName)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", ConfigDirName, configBaseName)
	}
	return ConfigFileName
}

// EnsureConfigDir creates the parent directory of configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
