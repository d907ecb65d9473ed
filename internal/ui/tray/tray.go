package tray

import (
	"fmt"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"

	"fyne.io/fyne/v2"
)

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnToggle      func()
	OnSkipBreak   func()
	OnStartBreak  func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app       MenuSetter
	callbacks Callbacks
	messages  notify.Messages
	snapshot  timekeeper.Snapshot
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, messages notify.Messages, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		messages:  messages,
		snapshot:  timekeeper.Snapshot{State: timekeeper.StateWork},
	}
	manager.refreshMenu()
	return manager
}

// Update reflects a new engine snapshot in the menu.
func (manager *Manager) Update(snapshot timekeeper.Snapshot) {
	if snapshot == manager.snapshot {
		return
	}
	manager.snapshot = snapshot
	manager.refreshMenu()
}

// SetMessages switches the menu language.
func (manager *Manager) SetMessages(messages notify.Messages) {
	manager.messages = messages
	manager.refreshMenu()
}

// Status returns the status line shown at the top of the menu.
func (manager *Manager) Status() string {
	status := fmt.Sprintf("%s %s", manager.messages.StateLabel(manager.snapshot.State), notify.FormatClock(manager.snapshot.RemainingSeconds))
	if !manager.snapshot.Running {
		status = fmt.Sprintf("%s (%s)", status, manager.messages.Paused)
	}
	return status
}

func (manager *Manager) refreshMenu() {
	messages := manager.messages

	status := fyne.NewMenuItem(manager.Status(), invoke(manager.callbacks.OnShow))

	toggleLabel := messages.Start
	if manager.snapshot.Running {
		toggleLabel = messages.Pause
	}
	toggle := fyne.NewMenuItem(toggleLabel, invoke(manager.callbacks.OnToggle))

	skip := fyne.NewMenuItem(messages.SkipBreak, invoke(manager.callbacks.OnSkipBreak))
	skip.Disabled = !manager.snapshot.State.IsBreak()

	startBreak := fyne.NewMenuItem(messages.StartBreak, invoke(manager.callbacks.OnStartBreak))
	startBreak.Disabled = manager.snapshot.State != timekeeper.StateWork

	menu := fyne.NewMenu(notify.AppTitle,
		status,
		fyne.NewMenuItemSeparator(),
		toggle,
		skip,
		startBreak,
		fyne.NewMenuItem(messages.Reset, invoke(manager.callbacks.OnReset)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(messages.Settings, invoke(manager.callbacks.OnPreferences)),
		fyne.NewMenuItem(messages.Quit, invoke(manager.callbacks.OnQuit)),
	)
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(menu)
	}
}

func invoke(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}
