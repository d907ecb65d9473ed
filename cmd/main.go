package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	appName = "PyPomodoro"
	appID   = "io.github.pypomodoro"

	envConfigDir = "POMODORO_CONFIG_DIR"
	envLogLevel  = "POMODORO_LOG_LEVEL"
)

type options struct {
	configDir string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "pomodoro",
		Short:         "Pomodoro focus timer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loadEnvironment(opts)
			return initializeLogger(cmd.ErrOrStderr(), opts.logLevel)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "settings directory (default: user config dir)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newGUICmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newAutostartCmd())
	return root
}

// loadEnvironment reads .env and fills options the flags left empty.
func loadEnvironment(opts *options) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}
	if opts.configDir == "" {
		opts.configDir = os.Getenv(envConfigDir)
	}
	if opts.logLevel == "" {
		opts.logLevel = os.Getenv(envLogLevel)
	}
}

// initializeLogger installs a text handler writing to w.
func initializeLogger(w io.Writer, level string) error {
	var logLevel slog.Level
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})))
	return nil
}

func (opts *options) resolveConfigDir() (string, error) {
	dir, err := platform.NewService(appName).ConfigDir(opts.configDir)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return dir, nil
}

func (opts *options) store() (*storage.Store, error) {
	dir, err := opts.resolveConfigDir()
	if err != nil {
		return nil, err
	}
	return storage.NewStore(dir), nil
}

// loadSettings never fails: an unreadable file means defaults.
func loadSettings(store *storage.Store) preferences.Settings {
	settings, err := store.Load()
	if err != nil {
		slog.Warn("using default settings", "path", store.Path(), "error", err)
	}
	return settings
}
