// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "sniptype"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultCatalogPath returns the default path for the SQLite snippet catalog.
func DefaultCatalogPath() string {
	return filepath.Join(XDGDataHome(), appName, "catalog.db")
}

// DefaultLogPath returns the diagnostic log file path.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), appName, appName+".log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
