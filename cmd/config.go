package main

import (
	"errors"
	"fmt"
	"os"

	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/terminal"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	config := &cobra.Command{Use: "config", Short: "Inspect and edit saved settings"}

	config.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	})

	config.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			serialized, err := storage.Marshal(loadSettings(store))
			if err != nil {
				return err
			}
			_, _ = cmd.OutOrStdout().Write(serialized)
			return nil
		},
	})

	config.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			settings := loadSettings(store)
			if err := storage.SetValue(&settings, args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(settings.Sanitized()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", args[0])
			return nil
		},
	})

	config.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			settings, err := terminal.NewSettingsForm(loadSettings(store)).Run()
			if errors.Is(err, huh.ErrUserAborted) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no changes saved")
				return nil
			}
			if err != nil {
				return fmt.Errorf("run settings form: %w", err)
			}
			if err := store.Save(settings); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "settings saved")
			return nil
		},
	})

	config.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			if err := store.Save(preferences.DefaultSettings()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "settings reset")
			return nil
		},
	})

	return config
}

func newAutostartCmd() *cobra.Command {
	autostart := &cobra.Command{Use: "autostart", Short: "Manage launch at login"}
	service := platform.NewService(appName)

	autostart.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Start the desktop timer at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}
			if err := service.EnableAutostart(execPath); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "autostart enabled")
			return nil
		},
	})

	autostart.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Stop launching at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := service.DisableAutostart(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "autostart disabled")
			return nil
		},
	})

	return autostart
}
