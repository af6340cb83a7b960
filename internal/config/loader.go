package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. explicit path (command-line flag)
// 2. LINKMILL_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// 4. config.yaml / config.json in the executable's directory
func GetConfigPath(providedPath string) string {
	if providedPath != "" {
		if fileExists(providedPath) {
			return providedPath
		}
		return ""
	}

	if envPath := os.Getenv("LINKMILL_CONFIG_PATH"); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	var locations []string
	if cwd, err := os.Getwd(); err == nil {
		locations = append(locations, cwd)
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		if len(locations) == 0 || locations[0] != exeDir {
			locations = append(locations, exeDir)
		}
	}

	for _, location := range locations {
		for _, file := range []string{"config.yaml", "config.json"} {
			path := filepath.Join(location, file)
			if fileExists(path) {
				return path
			}
		}
	}

	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
