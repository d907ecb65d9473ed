package main

import (
	"fmt"
	"os"
	"path/filepath"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"
	"pomodoro/internal/sound"
	"pomodoro/internal/ui/terminal"

	"github.com/spf13/cobra"
)

const tuiLogFileName = "tui.log"

func newTUICmd(opts *options) *cobra.Command {
	var desktopNotify bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts, desktopNotify)
		},
	}
	cmd.Flags().BoolVar(&desktopNotify, "notify", true, "send desktop notifications on transitions")
	return cmd
}

func runTUI(opts *options, desktopNotify bool) error {
	dir, err := opts.resolveConfigDir()
	if err != nil {
		return err
	}

	// The terminal belongs to bubbletea while it runs; logs go to a file.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, tuiLogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	if err := initializeLogger(logFile, opts.logLevel); err != nil {
		return err
	}

	store, err := opts.store()
	if err != nil {
		return err
	}
	settings := loadSettings(store)

	player := sound.NewPlayer()
	player.Configure(settings.SoundEnabled, settings.SoundFile)

	var notifier notify.Notifier
	if desktopNotify {
		notifier = notify.NewCommandNotifier()
	}
	dispatcher := notify.NewDispatcher(notifier, player, settings.Language)

	keeper := timekeeper.New(settings.EngineConfig(), nil)
	return terminal.Run(terminal.New(keeper, dispatcher, settings.Language, settings.Theme))
}
