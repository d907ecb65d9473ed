package driver

import (
	"time"

	"pomodoro/internal/core/timekeeper"
)

// EventType defines the type of Driver event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventProgress   EventType = "progress"
)

// Event represents a Driver update for observers.
type Event struct {
	Type       EventType
	Transition timekeeper.TransitionEvent
	Snapshot   timekeeper.Snapshot
	At         time.Time
}
