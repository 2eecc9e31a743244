// Package app - constants.go centralizes magic strings and configuration values.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Directory and file names for the app builder configuration.
const (
	// GlobalConfigDir is the application subdirectory within the OS config directory.
	GlobalConfigDir = "appbuilder"

	// ConfigFile is the optional YAML configuration file in GlobalConfigDir.
	ConfigFile = "config.yaml"

	// HistoryFile is the default shell history file name in GlobalConfigDir.
	HistoryFile = "history"

	// ExportBaseName is the file name, without extension, of exported code.
	ExportBaseName = "generated"
)

// Environment variables read by LoadConfig.
const (
	EnvIDStrategy  = "APPBUILDER_ID_STRATEGY"
	EnvTarget      = "APPBUILDER_TARGET"
	EnvExportDir   = "APPBUILDER_EXPORT_DIR"
	EnvLogLevel    = "APPBUILDER_LOG_LEVEL"
	EnvLogFile     = "APPBUILDER_LOG_FILE"
	EnvHistoryFile = "APPBUILDER_HISTORY_FILE"
	EnvConfigFile  = "APPBUILDER_CONFIG"
	EnvNoColor     = "NO_COLOR"
)

// StatusDuration is how long transient status messages ("Copied!") stay up.
const StatusDuration = 2 * time.Second

// GridStep is the canvas grid size in pixels; keyboard moves snap to it.
const GridStep = 20

// GlobalConfigPath returns the platform-appropriate global config directory
// (e.g. ~/.config/appbuilder on Linux,
// ~/Library/Application Support/appbuilder on macOS).
func GlobalConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(configDir, GlobalConfigDir), nil
}

// File permissions.
const (
	// DirPerm is the permission mode for directories.
	DirPerm = 0o755

	// FilePerm is the permission mode for regular files.
	FilePerm = 0o644
)
