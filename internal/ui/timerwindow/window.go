package timerwindow

import (
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines button handlers.
type Callbacks struct {
	OnToggle     func()
	OnReset      func()
	OnSkipBreak  func()
	OnStartBreak func()
	OnSettings   func()
}

// Window shows the countdown and the session controls.
type Window struct {
	window        fyne.Window
	messages      notify.Messages
	stateLabel    *canvas.Text
	timerLabel    *canvas.Text
	cycleLabel    *widget.Label
	toggleButton  *widget.Button
	resetButton   *widget.Button
	skipButton    *widget.Button
	breakButton   *widget.Button
	settingButton *widget.Button
	snapshot      timekeeper.Snapshot
}

// New creates the main window. Labels and enablement follow the last
// snapshot passed to Update.
func New(app fyne.App, messages notify.Messages, callbacks Callbacks) *Window {
	window := app.NewWindow(notify.AppTitle)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	stateLabel := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	stateLabel.Alignment = fyne.TextAlignCenter
	stateLabel.TextStyle = fyne.TextStyle{Bold: true}
	stateLabel.TextSize = 18

	timerLabel := canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 56

	cycleLabel := widget.NewLabel("")
	cycleLabel.Alignment = fyne.TextAlignCenter

	timerWindow := &Window{
		window:        window,
		messages:      messages,
		stateLabel:    stateLabel,
		timerLabel:    timerLabel,
		cycleLabel:    cycleLabel,
		toggleButton:  widget.NewButton("", callbacks.OnToggle),
		resetButton:   widget.NewButton("", callbacks.OnReset),
		skipButton:    widget.NewButton("", callbacks.OnSkipBreak),
		breakButton:   widget.NewButton("", callbacks.OnStartBreak),
		settingButton: widget.NewButton("", callbacks.OnSettings),
	}

	buttons := container.NewHBox(
		layout.NewSpacer(),
		timerWindow.toggleButton,
		timerWindow.resetButton,
		timerWindow.skipButton,
		timerWindow.breakButton,
		timerWindow.settingButton,
		layout.NewSpacer(),
	)
	content := container.NewVBox(stateLabel, timerLabel, cycleLabel, buttons)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(520, 360))

	timerWindow.Update(timekeeper.Snapshot{State: timekeeper.StateWork})
	return timerWindow
}

// Window exposes the underlying fyne window.
func (timerWindow *Window) Window() fyne.Window {
	return timerWindow.window
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// SetMessages switches the display language.
func (timerWindow *Window) SetMessages(messages notify.Messages) {
	timerWindow.messages = messages
	timerWindow.Update(timerWindow.snapshot)
}

// Update refreshes every widget from snapshot. Call it on the fyne goroutine.
func (timerWindow *Window) Update(snapshot timekeeper.Snapshot) {
	timerWindow.snapshot = snapshot
	messages := timerWindow.messages

	timerWindow.setText(timerWindow.stateLabel, messages.StateLabel(snapshot.State))
	timerWindow.setText(timerWindow.timerLabel, notify.FormatClock(snapshot.RemainingSeconds))
	timerWindow.cycleLabel.SetText(messages.CycleCount(snapshot.Cycles))

	if snapshot.Running {
		timerWindow.toggleButton.SetText(messages.Pause)
		timerWindow.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		timerWindow.toggleButton.SetText(messages.Start)
		timerWindow.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
	timerWindow.resetButton.SetText(messages.Reset)
	timerWindow.skipButton.SetText(messages.SkipBreak)
	timerWindow.breakButton.SetText(messages.StartBreak)
	timerWindow.settingButton.SetText(messages.Settings)

	setEnabled(timerWindow.skipButton, snapshot.State.IsBreak())
	setEnabled(timerWindow.breakButton, snapshot.State == timekeeper.StateWork)
}

// RefreshColors re-reads text colors after a theme change.
func (timerWindow *Window) RefreshColors() {
	for _, text := range []*canvas.Text{timerWindow.stateLabel, timerWindow.timerLabel} {
		text.Color = theme.Color(theme.ColorNameForeground)
		text.Refresh()
	}
}

func (timerWindow *Window) setText(text *canvas.Text, value string) {
	if text.Text == value {
		return
	}
	text.Text = value
	text.Refresh()
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
