package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetVersion returns the service version from the environment (set by
// CI/CD) or from a VERSION file for local development.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	for _, versionPath := range []string{"VERSION", filepath.Join("..", "VERSION")} {
		if content, err := os.ReadFile(versionPath); err == nil {
			if v := strings.TrimSpace(string(content)); v != "" {
				return v
			}
		}
	}

	return "0.1.0"
}
