// Package sound plays the transition cue through the platform's audio tool.
package sound

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoPlayer indicates no supported audio command was found.
var ErrNoPlayer = errors.New("no audio player available")

// Player plays a single configured sound file.
type Player struct {
	mu       sync.Mutex
	enabled  bool
	file     string
	lookPath func(file string) (string, error)
	start    func(commands []playerCommand) error
	warned   bool
}

// NewPlayer returns a disabled Player.
func NewPlayer() *Player {
	return &Player{
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Configure sets whether cues play and which file is used.
func (player *Player) Configure(enabled bool, file string) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.enabled = enabled
	player.file = file
}

// Play starts the cue without waiting for it to finish. It does nothing when
// sound is disabled or the configured file is missing.
func (player *Player) Play() error {
	player.mu.Lock()
	defer player.mu.Unlock()

	if !player.enabled || player.file == "" {
		return nil
	}
	if _, err := os.Stat(player.file); err != nil {
		slog.Debug("sound file unavailable", "file", player.file, "error", err)
		return nil
	}

	commands := player.commands()
	if len(commands) == 0 {
		if !player.warned {
			slog.Warn("sound disabled", "error", ErrNoPlayer, "file", player.file)
			player.warned = true
		}
		return ErrNoPlayer
	}
	if err := player.start(commands); err != nil {
		return fmt.Errorf("play %s: %w", player.file, err)
	}
	return nil
}

// commands returns the installed players able to decode the configured file,
// in preference order.
func (player *Player) commands() []playerCommand {
	var installed []playerCommand
	for _, candidate := range candidates(player.file) {
		path, err := player.lookPath(candidate.name)
		if err == nil {
			installed = append(installed, playerCommand{name: path, args: candidate.args})
		}
	}
	return installed
}

// soundFileExtensions are read by libsndfile-based tools. Anything else, mp3
// included, needs a player with its own decoders.
var soundFileExtensions = map[string]bool{".wav": true, ".ogg": true, ".oga": true, ".flac": true}

func extension(file string) string {
	return strings.ToLower(filepath.Ext(file))
}

func soundFileFormat(file string) bool {
	return soundFileExtensions[extension(file)]
}

type playerCommand struct {
	name string
	args []string
}

// startDetached starts the first command and returns. When it exits with an
// error the remaining commands are tried in order in the background.
func startDetached(commands []playerCommand) error {
	first := exec.Command(commands[0].name, commands[0].args...)
	if err := first.Start(); err != nil {
		return err
	}
	go func() {
		err := first.Wait()
		if err == nil {
			return
		}
		slog.Debug("sound player failed", "command", commands[0].name, "error", err)
		if err := fallback(commands[1:], err, runCommand); err != nil {
			slog.Warn("sound cue failed", "error", err)
		}
	}()
	return nil
}

// fallback runs commands until one succeeds. It returns the last failure,
// which is lastErr when there is nothing left to try.
func fallback(commands []playerCommand, lastErr error, run func(playerCommand) error) error {
	for _, command := range commands {
		lastErr = run(command)
		if lastErr == nil {
			return nil
		}
		slog.Debug("sound player failed", "command", command.name, "error", lastErr)
	}
	return lastErr
}

func runCommand(command playerCommand) error {
	return exec.Command(command.name, command.args...).Run()
}
