package storage

import (
	"os"
	"path/filepath"
	"testing"

	"pomodoro/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(t.TempDir())

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "PyPomodoro"))
	settings := preferences.DefaultSettings()
	settings.WorkMinutes = 45
	settings.Theme = preferences.ThemeDark
	settings.SoundFile = "/tmp/bell.wav"
	settings.AutoStartWork = false

	require.NoError(t, store.Save(settings))
	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "work_minutes: 40\ntheme: dark\nunknown_key: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(content), 0o644))

	settings, err := NewStore(dir).Load()

	require.NoError(t, err)
	want := preferences.DefaultSettings()
	want.WorkMinutes = 40
	want.Theme = preferences.ThemeDark
	assert.Equal(t, want, settings)
}

func TestLoad_BadValueFallsBackPerKey(t *testing.T) {
	dir := t.TempDir()
	content := "work_minutes: lots\nshort_break_minutes: 7\nlong_break_minutes: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(content), 0o644))

	settings, err := NewStore(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, 25, settings.WorkMinutes)
	assert.Equal(t, 7, settings.ShortBreakMinutes)
	assert.Equal(t, 1, settings.LongBreakMinutes)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("work_minutes: [1, 2\n"), 0o644))

	settings, err := NewStore(dir).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSetValue(t *testing.T) {
	settings := preferences.DefaultSettings()

	require.NoError(t, SetValue(&settings, "work_minutes", "30"))
	require.NoError(t, SetValue(&settings, "auto_start_break", "false"))
	require.NoError(t, SetValue(&settings, "sound_file", "/home/me/bell.wav"))

	assert.Equal(t, 30, settings.WorkMinutes)
	assert.False(t, settings.AutoStartBreak)
	assert.Equal(t, "/home/me/bell.wav", settings.SoundFile)
}

func TestSetValue_Errors(t *testing.T) {
	settings := preferences.DefaultSettings()

	err := SetValue(&settings, "volume", "3")
	assert.ErrorIs(t, err, ErrUnknownKey)

	err = SetValue(&settings, "work_minutes", "soon")
	assert.Error(t, err)
	assert.Equal(t, 25, settings.WorkMinutes)

	err = SetValue(&settings, "theme", "[dark]")
	assert.Error(t, err)
}

func TestMarshal_UsesSnakeCaseKeys(t *testing.T) {
	data, err := Marshal(preferences.DefaultSettings())

	require.NoError(t, err)
	for _, key := range Keys {
		assert.Contains(t, string(data), key+":")
	}
}
