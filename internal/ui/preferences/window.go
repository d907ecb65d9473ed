package preferences

import (
	"strconv"
	"strings"

	"pomodoro/internal/notify"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window         fyne.Window
	settings       Settings
	onSave         func(Settings)
	form           *widget.Form
	workMinutes    *widget.Entry
	shortMinutes   *widget.Entry
	longMinutes    *widget.Entry
	theme          *widget.Select
	language       *widget.Select
	soundEnabled   *widget.Check
	soundFile      *widget.Entry
	autoStartBreak *widget.Check
	autoStartWork  *widget.Check
	browseButton   *widget.Button
	saveButton     *widget.Button
	cancelButton   *widget.Button
}

// New creates a preferences window labelled in the settings language.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("")

	prefs := &Window{
		window:         window,
		onSave:         onSave,
		workMinutes:    widget.NewEntry(),
		shortMinutes:   widget.NewEntry(),
		longMinutes:    widget.NewEntry(),
		theme:          widget.NewSelect(Themes, nil),
		language:       widget.NewSelect(Languages, nil),
		soundEnabled:   widget.NewCheck("", nil),
		soundFile:      widget.NewEntry(),
		autoStartBreak: widget.NewCheck("", nil),
		autoStartWork:  widget.NewCheck("", nil),
	}
	prefs.soundFile.Disable()
	prefs.browseButton = widget.NewButton("", prefs.selectSound)

	prefs.form = widget.NewForm(
		widget.NewFormItem("", prefs.workMinutes),
		widget.NewFormItem("", prefs.shortMinutes),
		widget.NewFormItem("", prefs.longMinutes),
		widget.NewFormItem("", prefs.theme),
		widget.NewFormItem("", prefs.language),
		widget.NewFormItem("", prefs.soundEnabled),
		widget.NewFormItem("", container.NewBorder(nil, nil, nil, prefs.browseButton, prefs.soundFile)),
		widget.NewFormItem("", prefs.autoStartBreak),
		widget.NewFormItem("", prefs.autoStartWork),
	)

	prefs.saveButton = widget.NewButton("", prefs.handleSave)
	prefs.cancelButton = widget.NewButton("", window.Hide)
	buttons := container.NewHBox(layout.NewSpacer(), prefs.cancelButton, prefs.saveButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, prefs.form))
	window.Resize(fyne.NewSize(360, 420))
	window.SetCloseIntercept(window.Hide)

	prefs.SetMessages(notify.For(settings.Language))
	prefs.UpdateSettings(settings)
	return prefs
}

// SetMessages relabels the window.
func (prefs *Window) SetMessages(messages notify.Messages) {
	prefs.window.SetTitle(messages.Settings)

	labels := []string{
		messages.WorkMinutes,
		messages.ShortBreakMinutes,
		messages.LongBreakMinutes,
		messages.Theme,
		messages.Language,
		"",
		messages.SoundFile,
		"",
		"",
	}
	for i, item := range prefs.form.Items {
		item.Text = labels[i]
	}
	prefs.form.Refresh()

	prefs.soundEnabled.Text = messages.SoundEnabled
	prefs.soundEnabled.Refresh()
	prefs.autoStartBreak.Text = messages.AutoStartBreak
	prefs.autoStartBreak.Refresh()
	prefs.autoStartWork.Text = messages.AutoStartWork
	prefs.autoStartWork.Refresh()

	prefs.soundFile.SetPlaceHolder(messages.SoundFile)
	prefs.browseButton.SetText(messages.Browse)
	prefs.saveButton.SetText(messages.Save)
	prefs.cancelButton.SetText(messages.Cancel)
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workMinutes.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.shortMinutes.SetText(strconv.Itoa(settings.ShortBreakMinutes))
	prefs.longMinutes.SetText(strconv.Itoa(settings.LongBreakMinutes))
	prefs.theme.SetSelected(settings.Theme)
	prefs.language.SetSelected(settings.Language)
	prefs.soundEnabled.SetChecked(settings.SoundEnabled)
	prefs.soundFile.SetText(settings.SoundFile)
	prefs.autoStartBreak.SetChecked(settings.AutoStartBreak)
	prefs.autoStartWork.SetChecked(settings.AutoStartWork)
}

// Collect reads the form into a sanitized Settings value. Fields that do
// not parse keep their previous value.
func (prefs *Window) Collect() Settings {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workMinutes.Text); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.shortMinutes.Text); ok {
		settings.ShortBreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.longMinutes.Text); ok {
		settings.LongBreakMinutes = minutes
	}

	settings.Theme = prefs.theme.Selected
	settings.Language = prefs.language.Selected
	settings.SoundEnabled = prefs.soundEnabled.Checked
	settings.SoundFile = strings.TrimSpace(prefs.soundFile.Text)
	settings.AutoStartBreak = prefs.autoStartBreak.Checked
	settings.AutoStartWork = prefs.autoStartWork.Checked

	return settings.Sanitized()
}

func (prefs *Window) handleSave() {
	settings := prefs.Collect()
	prefs.settings = settings
	prefs.SetMessages(notify.For(settings.Language))
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) selectSound() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		prefs.soundFile.SetText(reader.URI().Path())
	}, prefs.window)
	picker.SetFilter(storage.NewExtensionFileFilter([]string{".wav", ".mp3", ".ogg"}))
	picker.Show()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
