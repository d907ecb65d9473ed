package driver

import (
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

// Handler reacts to session transitions. It runs synchronously on the
// goroutine that caused the transition, with the driver lock released.
type Handler interface {
	HandleTransition(event timekeeper.TransitionEvent, snapshot timekeeper.Snapshot)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(event timekeeper.TransitionEvent, snapshot timekeeper.Snapshot)

// HandleTransition calls fn(event, snapshot).
func (fn HandlerFunc) HandleTransition(event timekeeper.TransitionEvent, snapshot timekeeper.Snapshot) {
	fn(event, snapshot)
}

// Config contains runtime options for Driver.
type Config struct {
	TickInterval time.Duration
}

// Driver owns the tick source for a TimeKeeper and serializes every call
// into it.
type Driver struct {
	mu      sync.Mutex
	keeper  *timekeeper.TimeKeeper
	options Config
	handler Handler
	events  []chan Event
	stopCh  chan struct{}
	running bool
	now     func() time.Time
}

// New creates a Driver around a fresh TimeKeeper.
func New(config model.EngineConfig, options Config) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Driver{
		keeper:  timekeeper.New(config, nil),
		options: options,
		now:     time.Now,
	}
}

// SetHandler injects the transition handler.
func (driver *Driver) SetHandler(handler Handler) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	driver.handler = handler
}

// Subscribe registers a new observer channel.
func (driver *Driver) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	driver.mu.Lock()
	driver.events = append(driver.events, ch)
	driver.mu.Unlock()
	return ch
}

// Run launches the ticking loop. A stopped driver can be run again;
// observers closed by Stop must subscribe anew.
func (driver *Driver) Run() {
	driver.mu.Lock()
	if driver.running {
		driver.mu.Unlock()
		return
	}
	driver.running = true
	stopCh := make(chan struct{})
	driver.stopCh = stopCh
	driver.mu.Unlock()

	slog.Debug("driver started", "tick_interval", driver.options.TickInterval)
	go driver.loop(stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	if !driver.running {
		driver.mu.Unlock()
		return
	}
	close(driver.stopCh)
	driver.running = false
	events := driver.events
	driver.events = nil
	driver.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	slog.Debug("driver stopped")
}

// Start resumes the countdown.
func (driver *Driver) Start() {
	driver.command(func(keeper *timekeeper.TimeKeeper) (timekeeper.TransitionEvent, bool) {
		keeper.Start()
		return timekeeper.TransitionEvent{}, false
	})
}

// Pause freezes the countdown.
func (driver *Driver) Pause() {
	driver.command(func(keeper *timekeeper.TimeKeeper) (timekeeper.TransitionEvent, bool) {
		keeper.Pause()
		return timekeeper.TransitionEvent{}, false
	})
}

// Toggle starts a paused countdown or pauses a running one.
func (driver *Driver) Toggle() {
	driver.command(func(keeper *timekeeper.TimeKeeper) (timekeeper.TransitionEvent, bool) {
		if keeper.Running() {
			keeper.Pause()
		} else {
			keeper.Start()
		}
		return timekeeper.TransitionEvent{}, false
	})
}

// Reset returns to a paused first work session.
func (driver *Driver) Reset() {
	driver.command(func(keeper *timekeeper.TimeKeeper) (timekeeper.TransitionEvent, bool) {
		keeper.Reset()
		return timekeeper.TransitionEvent{}, false
	})
}

// SkipBreak ends the current break. It reports whether a transition happened.
func (driver *Driver) SkipBreak() bool {
	return driver.command((*timekeeper.TimeKeeper).SkipBreak)
}

// StartBreak begins a short break from work. It reports whether a transition
// happened.
func (driver *Driver) StartBreak() bool {
	return driver.command((*timekeeper.TimeKeeper).StartBreak)
}

// UpdateSettings applies new durations and auto-start flags.
func (driver *Driver) UpdateSettings(config model.EngineConfig) {
	driver.command(func(keeper *timekeeper.TimeKeeper) (timekeeper.TransitionEvent, bool) {
		keeper.UpdateSettings(config)
		return timekeeper.TransitionEvent{}, false
	})
}

// Snapshot returns the current engine state.
func (driver *Driver) Snapshot() timekeeper.Snapshot {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.keeper.Snapshot()
}

func (driver *Driver) loop(stopCh <-chan struct{}) {
	ticker := time.NewTicker(driver.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			driver.tick()
		}
	}
}

func (driver *Driver) tick() {
	driver.mu.Lock()
	if !driver.keeper.Running() {
		driver.mu.Unlock()
		return
	}
	event, ok := driver.keeper.Tick()
	driver.finishLocked(event, ok)
}

// command runs fn under the lock, publishes the outcome and releases the lock.
func (driver *Driver) command(fn func(keeper *timekeeper.TimeKeeper) (timekeeper.TransitionEvent, bool)) bool {
	driver.mu.Lock()
	event, ok := fn(driver.keeper)
	driver.finishLocked(event, ok)
	return ok
}

func (driver *Driver) finishLocked(event timekeeper.TransitionEvent, transitioned bool) {
	snapshot := driver.keeper.Snapshot()
	at := driver.now()
	if transitioned {
		driver.emitLocked(Event{Type: EventTransition, Transition: event, Snapshot: snapshot, At: at})
	}
	driver.emitLocked(Event{Type: EventProgress, Snapshot: snapshot, At: at})
	handler := driver.handler
	driver.mu.Unlock()

	if !transitioned {
		return
	}
	slog.Info("session changed", "from", event.From, "to", event.To, "cycles", event.Cycles)
	if handler != nil {
		driver.dispatch(handler, event, snapshot)
	}
}

func (driver *Driver) dispatch(handler Handler, event timekeeper.TransitionEvent, snapshot timekeeper.Snapshot) {
	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("transition handler panicked", "panic", recovered, "to", event.To)
		}
	}()
	handler.HandleTransition(event, snapshot)
}

func (driver *Driver) emitLocked(event Event) {
	for _, ch := range driver.events {
		select {
		case ch <- event:
		default:
		}
	}
}
