package timekeeper

// State represents the current session kind.
type State string

const (
	StateWork       State = "work"
	StateShortBreak State = "short_break"
	StateLongBreak  State = "long_break"
)

// IsBreak reports whether the state is one of the break kinds.
func (state State) IsBreak() bool {
	return state == StateShortBreak || state == StateLongBreak
}

// TransitionEvent is emitted once per session change.
type TransitionEvent struct {
	From   State
	To     State
	Cycles int
}

// Sink receives transition events synchronously.
type Sink interface {
	OnTransition(event TransitionEvent)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(event TransitionEvent)

// OnTransition calls fn(event).
func (fn SinkFunc) OnTransition(event TransitionEvent) {
	fn(event)
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	State            State
	Running          bool
	RemainingSeconds int
	DurationSeconds  int
	Cycles           int
}
