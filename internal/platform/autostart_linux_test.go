//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopEntry_QuotesPathsWithSpaces(t *testing.T) {
	entry := desktopEntry("PyPomodoro", "/opt/my apps/pomodoro")

	assert.Contains(t, entry, `Exec="/opt/my apps/pomodoro" gui`)
	assert.Contains(t, entry, "Name=PyPomodoro")
}

func TestAutostart_EnableDisable(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	service := NewService("PyPomodoro")
	entryPath := filepath.Join(configHome, "autostart", "pypomodoro.desktop")

	require.NoError(t, service.EnableAutostart("/usr/bin/pomodoro"))
	data, err := os.ReadFile(entryPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exec=/usr/bin/pomodoro gui")

	require.NoError(t, service.DisableAutostart())
	_, err = os.Stat(entryPath)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, service.DisableAutostart(), "disabling twice is fine")
}

func TestEnableAutostart_RequiresExecPath(t *testing.T) {
	assert.Error(t, NewService("PyPomodoro").EnableAutostart(""))
}
