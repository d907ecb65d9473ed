package notify

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupported indicates no notification command exists for this platform.
var ErrUnsupported = errors.New("notifications unsupported on this platform")

// CommandNotifier shells out to the platform notification tool. It is used
// when no desktop application is running.
type CommandNotifier struct {
	goos string
	run  func(name string, args ...string) error
}

// NewCommandNotifier returns a notifier for the current platform.
func NewCommandNotifier() *CommandNotifier {
	return &CommandNotifier{
		goos: runtime.GOOS,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Notify implements Notifier.
func (notifier *CommandNotifier) Notify(title, body string) error {
	name, args, err := notificationCommand(notifier.goos, title, body)
	if err != nil {
		return err
	}
	if err := notifier.run(name, args...); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

func notificationCommand(goos, title, body string) (string, []string, error) {
	switch goos {
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeQuotes(body), escapeQuotes(title))
		return "osascript", []string{"-e", script}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "notify-send", []string{"--app-name=" + AppTitle, title, body}, nil
	default:
		return "", nil, ErrUnsupported
	}
}

func escapeQuotes(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}
