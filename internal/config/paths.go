package config

import (
	"os"
	"path/filepath"
)

// configDirName is the dot-directory scribe uses for both global and project
// configuration.
const configDirName = ".scribe"

// configFileName is the YAML file read inside a config directory.
const configFileName = "config.yaml"

// GlobalConfigDir returns the user-wide config directory (~/.scribe).
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName), nil
}

// ProjectConfigPath returns the project config path relative to the current
// working directory (.scribe/config.yaml).
func ProjectConfigPath() string {
	return filepath.Join(configDirName, configFileName)
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
