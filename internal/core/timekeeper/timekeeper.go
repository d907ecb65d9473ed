package timekeeper

import (
	"log/slog"

	"pomodoro/internal/core/model"
)

const (
	longBreakEvery  = 10
	shortBreakEvery = 5
)

// TimeKeeper is the work/break state machine. It has no notion of wall-clock
// time: every call to Tick advances the countdown by one second.
//
// A TimeKeeper is not safe for concurrent use; callers serialize access.
type TimeKeeper struct {
	config    model.EngineConfig
	sink      Sink
	state     State
	running   bool
	remaining int
	cycles    int
}

// New creates a TimeKeeper in a paused work session. sink may be nil.
func New(config model.EngineConfig, sink Sink) *TimeKeeper {
	keeper := &TimeKeeper{
		config: config,
		sink:   sink,
		state:  StateWork,
	}
	keeper.remaining = keeper.durationSeconds(StateWork)
	return keeper
}

// SetSink replaces the transition sink.
func (keeper *TimeKeeper) SetSink(sink Sink) {
	keeper.sink = sink
}

// Start resumes the countdown.
func (keeper *TimeKeeper) Start() {
	keeper.running = true
}

// Pause freezes the countdown.
func (keeper *TimeKeeper) Pause() {
	keeper.running = false
}

// Reset returns to a paused work session with no completed cycles.
func (keeper *TimeKeeper) Reset() {
	keeper.state = StateWork
	keeper.running = false
	keeper.cycles = 0
	keeper.remaining = keeper.durationSeconds(StateWork)
}

// Tick advances the countdown by one second. The returned bool is true when
// the session ended and the keeper moved to the next one.
func (keeper *TimeKeeper) Tick() (TransitionEvent, bool) {
	if !keeper.running {
		return TransitionEvent{}, false
	}
	if keeper.remaining > 0 {
		keeper.remaining--
	}
	if keeper.remaining <= 0 {
		return keeper.completeSession(), true
	}
	return TransitionEvent{}, false
}

// SkipBreak ends the current break and returns to work.
func (keeper *TimeKeeper) SkipBreak() (TransitionEvent, bool) {
	if !keeper.state.IsBreak() {
		return TransitionEvent{}, false
	}
	return keeper.transitionTo(StateWork, keeper.config.AutoStartWork), true
}

// StartBreak interrupts a work session with a running short break.
func (keeper *TimeKeeper) StartBreak() (TransitionEvent, bool) {
	if keeper.state != StateWork {
		return TransitionEvent{}, false
	}
	return keeper.transitionTo(StateShortBreak, true), true
}

// UpdateSettings replaces durations and auto-start flags. When the length of
// the current session changes, the countdown restarts at the new length.
func (keeper *TimeKeeper) UpdateSettings(config model.EngineConfig) {
	previous := keeper.durationSeconds(keeper.state)
	keeper.config = config
	if current := keeper.durationSeconds(keeper.state); current != previous {
		keeper.remaining = current
	}
}

// Config returns the active configuration.
func (keeper *TimeKeeper) Config() model.EngineConfig {
	return keeper.config
}

// State returns the current session kind.
func (keeper *TimeKeeper) State() State {
	return keeper.state
}

// Running reports whether Tick advances the countdown.
func (keeper *TimeKeeper) Running() bool {
	return keeper.running
}

// RemainingSeconds returns the seconds left in the current session.
func (keeper *TimeKeeper) RemainingSeconds() int {
	return keeper.remaining
}

// Cycles returns the number of completed work sessions since the last reset.
func (keeper *TimeKeeper) Cycles() int {
	return keeper.cycles
}

// Snapshot copies the observable state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	return Snapshot{
		State:            keeper.state,
		Running:          keeper.running,
		RemainingSeconds: keeper.remaining,
		DurationSeconds:  keeper.durationSeconds(keeper.state),
		Cycles:           keeper.cycles,
	}
}

// DurationSeconds returns the full length of a session of the given kind.
func (keeper *TimeKeeper) DurationSeconds(state State) int {
	return keeper.durationSeconds(state)
}

func (keeper *TimeKeeper) completeSession() TransitionEvent {
	if keeper.state == StateWork {
		keeper.cycles++
		return keeper.transitionTo(NextAfterWork(keeper.cycles), keeper.config.AutoStartBreak)
	}
	return keeper.transitionTo(StateWork, keeper.config.AutoStartWork)
}

// NextAfterWork returns the session that follows the given completed work
// cycle. Only every fifth cycle earns a break; every tenth earns a long one.
func NextAfterWork(cycles int) State {
	switch {
	case cycles%longBreakEvery == 0:
		return StateLongBreak
	case cycles%shortBreakEvery == 0:
		return StateShortBreak
	default:
		return StateWork
	}
}

func (keeper *TimeKeeper) transitionTo(next State, autoStart bool) TransitionEvent {
	event := TransitionEvent{
		From:   keeper.state,
		To:     next,
		Cycles: keeper.cycles,
	}
	keeper.state = next
	keeper.running = autoStart
	keeper.remaining = keeper.durationSeconds(next)

	keeper.notify(event)
	return event
}

// notify hands event to the sink. A panicking sink is logged and never
// reaches the caller.
func (keeper *TimeKeeper) notify(event TransitionEvent) {
	if keeper.sink == nil {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("transition sink panicked", "panic", recovered, "to", event.To)
		}
	}()
	keeper.sink.OnTransition(event)
}

func (keeper *TimeKeeper) durationSeconds(state State) int {
	var minutes int
	switch state {
	case StateShortBreak:
		minutes = keeper.config.ShortBreakMinutes
	case StateLongBreak:
		minutes = keeper.config.LongBreakMinutes
	default:
		minutes = keeper.config.WorkMinutes
	}
	return max(1, minutes) * 60
}
