package timerwindow

import (
	"testing"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestUpdate_Work(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := New(app, notify.For("en"), Callbacks{})

	window.Update(timekeeper.Snapshot{State: timekeeper.StateWork, RemainingSeconds: 1500, Cycles: 3})

	assert.Equal(t, "Focus", window.stateLabel.Text)
	assert.Equal(t, "25:00", window.timerLabel.Text)
	assert.Equal(t, "Completed cycles: 3", window.cycleLabel.Text)
	assert.Equal(t, "Start", window.toggleButton.Text)
	assert.True(t, window.skipButton.Disabled())
	assert.False(t, window.breakButton.Disabled())
}

func TestUpdate_RunningBreak(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := New(app, notify.For("en"), Callbacks{})

	window.Update(timekeeper.Snapshot{State: timekeeper.StateLongBreak, Running: true, RemainingSeconds: 61})

	assert.Equal(t, "Long break", window.stateLabel.Text)
	assert.Equal(t, "01:01", window.timerLabel.Text)
	assert.Equal(t, "Pause", window.toggleButton.Text)
	assert.False(t, window.skipButton.Disabled())
	assert.True(t, window.breakButton.Disabled())
}

func TestButtons_InvokeCallbacks(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	var calls []string
	window := New(app, notify.For("en"), Callbacks{
		OnToggle:     func() { calls = append(calls, "toggle") },
		OnReset:      func() { calls = append(calls, "reset") },
		OnSkipBreak:  func() { calls = append(calls, "skip") },
		OnStartBreak: func() { calls = append(calls, "break") },
		OnSettings:   func() { calls = append(calls, "settings") },
	})
	window.Update(timekeeper.Snapshot{State: timekeeper.StateShortBreak})

	test.Tap(window.toggleButton)
	test.Tap(window.resetButton)
	test.Tap(window.skipButton)
	test.Tap(window.breakButton)
	test.Tap(window.settingButton)

	assert.Equal(t, []string{"toggle", "reset", "skip", "settings"}, calls, "disabled start-break ignores taps")
}

func TestSetMessages(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := New(app, notify.For("en"), Callbacks{})
	window.Update(timekeeper.Snapshot{State: timekeeper.StateShortBreak, Cycles: 5})

	window.SetMessages(notify.For("pt-BR"))

	assert.Equal(t, "Pausa curta", window.stateLabel.Text)
	assert.Equal(t, "Ciclos completos: 5", window.cycleLabel.Text)
}

func TestThemeFor(t *testing.T) {
	dark := ThemeFor("dark")
	light := ThemeFor("light")

	assert.Equal(t, theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
}
