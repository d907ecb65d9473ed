package tray

import (
	"testing"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTray struct {
	menus []*fyne.Menu
}

func (tray *fakeTray) SetSystemTrayMenu(menu *fyne.Menu) {
	tray.menus = append(tray.menus, menu)
}

func itemByLabel(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

func TestNew_InstallsMenu(t *testing.T) {
	app := &fakeTray{}

	New(app, notify.For("en"), Callbacks{})

	require.Len(t, app.menus, 1)
	menu := app.menus[0]
	assert.Equal(t, "Focus 00:00 (paused)", menu.Items[0].Label)
	assert.True(t, itemByLabel(t, menu, "Skip break").Disabled)
	assert.False(t, itemByLabel(t, menu, "Start break").Disabled)
}

func TestUpdate_RefreshesOnlyOnChange(t *testing.T) {
	app := &fakeTray{}
	manager := New(app, notify.For("en"), Callbacks{})
	snapshot := timekeeper.Snapshot{State: timekeeper.StateShortBreak, Running: true, RemainingSeconds: 299}

	manager.Update(snapshot)
	manager.Update(snapshot)

	require.Len(t, app.menus, 2)
	menu := app.menus[1]
	assert.Equal(t, "Short break 04:59", manager.Status())
	assert.False(t, itemByLabel(t, menu, "Skip break").Disabled)
	assert.True(t, itemByLabel(t, menu, "Start break").Disabled)
	itemByLabel(t, menu, "Pause")
}

func TestMenu_InvokesCallbacks(t *testing.T) {
	app := &fakeTray{}
	var calls []string
	New(app, notify.For("en"), Callbacks{
		OnToggle: func() { calls = append(calls, "toggle") },
		OnReset:  func() { calls = append(calls, "reset") },
		OnQuit:   func() { calls = append(calls, "quit") },
	})
	menu := app.menus[0]

	itemByLabel(t, menu, "Start").Action()
	itemByLabel(t, menu, "Reset").Action()
	itemByLabel(t, menu, "Settings").Action()
	itemByLabel(t, menu, "Quit").Action()

	assert.Equal(t, []string{"toggle", "reset", "quit"}, calls)
}

func TestSetMessages(t *testing.T) {
	app := &fakeTray{}
	manager := New(app, notify.For("en"), Callbacks{})

	manager.SetMessages(notify.For("pt-BR"))

	itemByLabel(t, app.menus[len(app.menus)-1], "Pular pausa")
}
