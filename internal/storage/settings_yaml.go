package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// ErrUnknownKey indicates a settings key that is not part of the file format.
var ErrUnknownKey = errors.New("unknown settings key")

type yamlSettings struct {
	WorkMinutes       int    `yaml:"work_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	Language          string `yaml:"language"`
	Theme             string `yaml:"theme"`
	SoundEnabled      bool   `yaml:"sound_enabled"`
	SoundFile         string `yaml:"sound_file"`
	AutoStartBreak    bool   `yaml:"auto_start_break"`
	AutoStartWork     bool   `yaml:"auto_start_work"`
}

// Keys lists the settings keys in file order.
var Keys = []string{
	"work_minutes",
	"short_break_minutes",
	"long_break_minutes",
	"language",
	"theme",
	"sound_enabled",
	"sound_file",
	"auto_start_break",
	"auto_start_work",
}

// Store reads and writes user preferences in a YAML file.
type Store struct {
	path string
}

// NewStore returns a Store keeping its file inside configDir.
func NewStore(configDir string) *Store {
	return &Store{path: filepath.Join(configDir, settingsFileName)}
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the config file does not exist, default settings are returned. Keys
// that are missing or hold a value of the wrong type keep their default.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(rawData, &nodes); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	for key, node := range nodes {
		if err := applyNode(&settings, key, &node); err != nil {
			slog.Warn("ignoring settings value", "key", key, "error", err)
		}
	}
	return settings.Sanitized(), nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := Marshal(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	slog.Debug("settings saved", "path", store.path)
	return nil
}

// Marshal renders settings in the on-disk format.
func Marshal(settings preferences.Settings) ([]byte, error) {
	fileData := yamlSettings{
		WorkMinutes:       settings.WorkMinutes,
		ShortBreakMinutes: settings.ShortBreakMinutes,
		LongBreakMinutes:  settings.LongBreakMinutes,
		Language:          settings.Language,
		Theme:             settings.Theme,
		SoundEnabled:      settings.SoundEnabled,
		SoundFile:         settings.SoundFile,
		AutoStartBreak:    settings.AutoStartBreak,
		AutoStartWork:     settings.AutoStartWork,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

// SetValue parses raw as YAML and assigns it to the named key.
func SetValue(settings *preferences.Settings, key, raw string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return fmt.Errorf("parse value for %s: %w", key, err)
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = *node.Content[0]
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("parse value for %s: expected a scalar", key)
	}
	return applyNode(settings, key, &node)
}

func applyNode(settings *preferences.Settings, key string, node *yaml.Node) error {
	var target any
	switch key {
	case "work_minutes":
		target = &settings.WorkMinutes
	case "short_break_minutes":
		target = &settings.ShortBreakMinutes
	case "long_break_minutes":
		target = &settings.LongBreakMinutes
	case "language":
		target = &settings.Language
	case "theme":
		target = &settings.Theme
	case "sound_enabled":
		target = &settings.SoundEnabled
	case "sound_file":
		target = &settings.SoundFile
	case "auto_start_break":
		target = &settings.AutoStartBreak
	case "auto_start_work":
		target = &settings.AutoStartWork
	default:
		return nil
	}
	if err := node.Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
