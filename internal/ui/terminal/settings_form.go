package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"pomodoro/internal/notify"
	"pomodoro/internal/ui/preferences"

	"github.com/charmbracelet/huh"
)

type formValues struct {
	workMinutes       string
	shortBreakMinutes string
	longBreakMinutes  string
	language          string
	theme             string
	soundEnabled      bool
	soundFile         string
	autoStartBreak    bool
	autoStartWork     bool
}

// SettingsForm edits preferences in the terminal.
type SettingsForm struct {
	form   *huh.Form
	values *formValues
}

// NewSettingsForm builds a form pre-filled with settings.
func NewSettingsForm(settings preferences.Settings) *SettingsForm {
	settings = settings.Sanitized()
	messages := notify.For(settings.Language)
	values := &formValues{
		workMinutes:       strconv.Itoa(settings.WorkMinutes),
		shortBreakMinutes: strconv.Itoa(settings.ShortBreakMinutes),
		longBreakMinutes:  strconv.Itoa(settings.LongBreakMinutes),
		language:          settings.Language,
		theme:             settings.Theme,
		soundEnabled:      settings.SoundEnabled,
		soundFile:         settings.SoundFile,
		autoStartBreak:    settings.AutoStartBreak,
		autoStartWork:     settings.AutoStartWork,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(messages.WorkMinutes).
				Value(&values.workMinutes).
				Validate(validateMinutes(preferences.MaxWorkMinutes)),
			huh.NewInput().Title(messages.ShortBreakMinutes).
				Value(&values.shortBreakMinutes).
				Validate(validateMinutes(preferences.MaxShortBreakMinutes)),
			huh.NewInput().Title(messages.LongBreakMinutes).
				Value(&values.longBreakMinutes).
				Validate(validateMinutes(preferences.MaxLongBreakMinutes)),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title(messages.Language).
				Options(huh.NewOptions(preferences.Languages...)...).
				Value(&values.language),
			huh.NewSelect[string]().Title(messages.Theme).
				Options(huh.NewOptions(preferences.Themes...)...).
				Value(&values.theme),
		),
		huh.NewGroup(
			huh.NewConfirm().Title(messages.SoundEnabled).Value(&values.soundEnabled),
			huh.NewInput().Title(messages.SoundFile).Value(&values.soundFile),
			huh.NewConfirm().Title(messages.AutoStartBreak).Value(&values.autoStartBreak),
			huh.NewConfirm().Title(messages.AutoStartWork).Value(&values.autoStartWork),
		),
	)

	return &SettingsForm{form: form, values: values}
}

// Run shows the form and returns the edited settings. It returns
// huh.ErrUserAborted when the user cancels.
func (settingsForm *SettingsForm) Run() (preferences.Settings, error) {
	if err := settingsForm.form.Run(); err != nil {
		return preferences.Settings{}, err
	}
	return settingsForm.Settings(), nil
}

// Settings converts the current form values. Unparsable minutes fall back to
// the defaults; everything is sanitized.
func (settingsForm *SettingsForm) Settings() preferences.Settings {
	values := settingsForm.values
	defaults := preferences.DefaultSettings()

	return preferences.Settings{
		WorkMinutes:       parseMinutes(values.workMinutes, defaults.WorkMinutes),
		ShortBreakMinutes: parseMinutes(values.shortBreakMinutes, defaults.ShortBreakMinutes),
		LongBreakMinutes:  parseMinutes(values.longBreakMinutes, defaults.LongBreakMinutes),
		Language:          values.language,
		Theme:             values.theme,
		SoundEnabled:      values.soundEnabled,
		SoundFile:         strings.TrimSpace(values.soundFile),
		AutoStartBreak:    values.autoStartBreak,
		AutoStartWork:     values.autoStartWork,
	}.Sanitized()
}

func validateMinutes(upper int) func(string) error {
	return func(raw string) error {
		minutes, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("enter a whole number of minutes")
		}
		if minutes < preferences.MinMinutes || minutes > upper {
			return fmt.Errorf("must be between %d and %d", preferences.MinMinutes, upper)
		}
		return nil
	}
}

func parseMinutes(raw string, fallback int) int {
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return minutes
}
