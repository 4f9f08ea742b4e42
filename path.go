package main

import (
	"os"
	"path/filepath"
)

const SettingsFileName = "tictactoe_settings.json"

// SettingsPath is the default settings file, next to the executable.
var SettingsPath string = defaultSettingsPath()

func defaultSettingsPath() string {
	exePath, err := os.Executable()
	if err == nil {
		exePath, err = filepath.EvalSymlinks(exePath)
	}
	if err != nil {
		// Fall back to the working directory.
		return SettingsFileName
	}
	return filepath.Join(filepath.Dir(exePath), SettingsFileName)
}
