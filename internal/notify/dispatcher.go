// Package notify turns session transitions into desktop notifications and
// sound cues.
package notify

import (
	"log/slog"
	"sync"

	"pomodoro/internal/core/timekeeper"
)

// Notifier delivers a notification to the user.
type Notifier interface {
	Notify(title, body string) error
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(title, body string) error

// Notify calls fn(title, body).
func (fn NotifierFunc) Notify(title, body string) error {
	return fn(title, body)
}

// Cue plays an audible signal.
type Cue interface {
	Play() error
}

// Dispatcher notifies and plays a cue for every transition. Collaborator
// failures are logged and never propagated.
type Dispatcher struct {
	mu       sync.Mutex
	notifier Notifier
	cue      Cue
	messages Messages
}

// NewDispatcher creates a Dispatcher. notifier and cue may be nil.
func NewDispatcher(notifier Notifier, cue Cue, language string) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		cue:      cue,
		messages: For(language),
	}
}

// SetLanguage switches the message catalog.
func (dispatcher *Dispatcher) SetLanguage(language string) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.messages = For(language)
}

// HandleTransition implements driver.Handler.
func (dispatcher *Dispatcher) HandleTransition(event timekeeper.TransitionEvent, _ timekeeper.Snapshot) {
	dispatcher.OnTransition(event)
}

// OnTransition implements timekeeper.Sink.
func (dispatcher *Dispatcher) OnTransition(event timekeeper.TransitionEvent) {
	dispatcher.mu.Lock()
	body := dispatcher.messages.Transition(event.To)
	notifier := dispatcher.notifier
	cue := dispatcher.cue
	dispatcher.mu.Unlock()

	if notifier != nil {
		if err := notifier.Notify(AppTitle, body); err != nil {
			slog.Warn("notification failed", "error", err, "to", event.To)
		}
	}
	if cue != nil {
		if err := cue.Play(); err != nil {
			slog.Debug("sound cue failed", "error", err)
		}
	}
}
