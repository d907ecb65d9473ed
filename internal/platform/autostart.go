package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Service bundles the OS-specific helpers the application needs.
type Service struct {
	appName string
}

// NewService returns helpers bound to appName.
func NewService(appName string) *Service {
	return &Service{appName: appName}
}

// ConfigDir returns the per-application configuration directory, creating
// nothing. An override wins when it is non-empty.
func (service *Service) ConfigDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	base, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, service.appName), nil
}

// EnableAutostart registers execPath to run at login.
func (service *Service) EnableAutostart(execPath string) error {
	if service.appName == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	return enableAutostart(service.appName, execPath)
}

// DisableAutostart removes the login registration.
func (service *Service) DisableAutostart() error {
	if service.appName == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}
	return disableAutostart(service.appName)
}

func userConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// slugName lowercases appName and joins words with dashes.
func slugName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "pypomodoro"
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
