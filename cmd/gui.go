package main

import (
	"errors"
	"log/slog"

	"pomodoro/internal/core/driver"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/sound"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerwindow"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Run the desktop timer",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGUI(opts)
		},
	}
}

func runGUI(opts *options) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			slog.Info("another instance is already running")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	store, err := opts.store()
	if err != nil {
		return err
	}
	settings := loadSettings(store)
	messages := notify.For(settings.Language)

	activeIcon := resources.MustIcon(resources.IconActive)
	pausedIcon := resources.MustIcon(resources.IconPaused)

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(activeIcon)
	fyneApp.Settings().SetTheme(timerwindow.ThemeFor(settings.Theme))

	timer := driver.New(settings.EngineConfig(), driver.Config{})
	player := sound.NewPlayer()
	player.Configure(settings.SoundEnabled, settings.SoundFile)
	dispatcher := notify.NewDispatcher(notify.NewFyneNotifier(fyneApp), player, settings.Language)
	timer.SetHandler(dispatcher)

	quit := func() {
		timer.Stop()
		fyneApp.Quit()
	}

	var prefsWindow *preferences.Window
	mainWindow := timerwindow.New(fyneApp, messages, timerwindow.Callbacks{
		OnToggle: timer.Toggle,
		OnReset:  timer.Reset,
		OnSkipBreak: func() {
			timer.SkipBreak()
		},
		OnStartBreak: func() {
			timer.StartBreak()
		},
		OnSettings: func() {
			prefsWindow.Show()
		},
	})

	var trayManager *tray.Manager
	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := store.Save(updated); err != nil {
			slog.Error("failed to save settings", "path", store.Path(), "error", err)
			dialog.ShowError(err, mainWindow.Window())
		}
		timer.UpdateSettings(updated.EngineConfig())
		player.Configure(updated.SoundEnabled, updated.SoundFile)
		dispatcher.SetLanguage(updated.Language)

		updatedMessages := notify.For(updated.Language)
		mainWindow.SetMessages(updatedMessages)
		mainWindow.ApplyTheme(fyneApp, updated.Theme)
		if trayManager != nil {
			trayManager.SetMessages(updatedMessages)
		}
	})

	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		desktopApp.SetSystemTrayIcon(pausedIcon)
		trayManager = tray.New(desktopApp, messages, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnToggle:      timer.Toggle,
			OnSkipBreak: func() {
				timer.SkipBreak()
			},
			OnStartBreak: func() {
				timer.StartBreak()
			},
			OnReset: timer.Reset,
			OnQuit:  quit,
		})
		mainWindow.Window().SetCloseIntercept(func() {
			mainWindow.Window().Hide()
		})
	} else {
		slog.Info("system tray unsupported on this platform")
		mainWindow.Window().SetCloseIntercept(quit)
	}

	events := timer.Subscribe(8)
	go func() {
		running := false
		for event := range events {
			snapshot := event.Snapshot
			iconChanged := snapshot.Running != running
			running = snapshot.Running
			fyne.Do(func() {
				mainWindow.Update(snapshot)
				if !hasTray {
					return
				}
				trayManager.Update(snapshot)
				if iconChanged {
					if snapshot.Running {
						desktopApp.SetSystemTrayIcon(activeIcon)
					} else {
						desktopApp.SetSystemTrayIcon(pausedIcon)
					}
				}
			})
		}
	}()

	mainWindow.Update(timer.Snapshot())
	timer.Run()
	mainWindow.Show()
	fyneApp.Run()

	timer.Stop()
	return nil
}
