package preferences

import (
	"slices"

	"pomodoro/internal/core/model"
)

// Themes and languages accepted by the displays.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	LanguagePortuguese = "pt-BR"
	LanguageEnglish    = "en"
)

// Input ranges offered by the preferences window.
const (
	MinMinutes           = 1
	MaxWorkMinutes       = 180
	MaxShortBreakMinutes = 60
	MaxLongBreakMinutes  = 120
)

// DefaultSoundFile is the cue played on transitions when none is chosen.
const DefaultSoundFile = "wood.mp3"

// Themes lists the selectable themes.
var Themes = []string{ThemeLight, ThemeDark}

// Languages lists the selectable message languages.
var Languages = []string{LanguagePortuguese, LanguageEnglish}

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	Language          string
	Theme             string
	SoundEnabled      bool
	SoundFile         string
	AutoStartBreak    bool
	AutoStartWork     bool
}

// DefaultSettings returns default settings for PyPomodoro.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:       model.DefaultWorkMinutes,
		ShortBreakMinutes: model.DefaultShortBreakMinutes,
		LongBreakMinutes:  model.DefaultLongBreakMinutes,
		Language:          LanguagePortuguese,
		Theme:             ThemeLight,
		SoundEnabled:      true,
		SoundFile:         DefaultSoundFile,
		AutoStartBreak:    true,
		AutoStartWork:     true,
	}
}

// EngineConfig converts settings to EngineConfig.
func (settings Settings) EngineConfig() model.EngineConfig {
	return model.EngineConfig{
		WorkMinutes:       settings.WorkMinutes,
		ShortBreakMinutes: settings.ShortBreakMinutes,
		LongBreakMinutes:  settings.LongBreakMinutes,
		AutoStartBreak:    settings.AutoStartBreak,
		AutoStartWork:     settings.AutoStartWork,
	}
}

// Sanitized clamps durations into the window ranges and replaces unknown
// theme or language values with defaults.
func (settings Settings) Sanitized() Settings {
	defaults := DefaultSettings()
	settings.WorkMinutes = clampMinutes(settings.WorkMinutes, MaxWorkMinutes)
	settings.ShortBreakMinutes = clampMinutes(settings.ShortBreakMinutes, MaxShortBreakMinutes)
	settings.LongBreakMinutes = clampMinutes(settings.LongBreakMinutes, MaxLongBreakMinutes)
	if !slices.Contains(Themes, settings.Theme) {
		settings.Theme = defaults.Theme
	}
	if !slices.Contains(Languages, settings.Language) {
		settings.Language = defaults.Language
	}
	return settings
}

func clampMinutes(value, upper int) int {
	return min(max(value, MinMinutes), upper)
}
