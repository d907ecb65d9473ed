package driver

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneMinuteConfig() model.EngineConfig {
	return model.EngineConfig{
		WorkMinutes:       1,
		ShortBreakMinutes: 1,
		LongBreakMinutes:  1,
		AutoStartBreak:    true,
		AutoStartWork:     true,
	}
}

func drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case event := <-ch:
			events = append(events, event)
		default:
			return events
		}
	}
}

func TestNew_DefaultsTickInterval(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{})
	assert.Equal(t, time.Second, driver.options.TickInterval)
}

func TestTick_IgnoredWhilePaused(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{})
	events := driver.Subscribe(10)

	driver.tick()

	assert.Empty(t, drain(events))
	assert.Equal(t, 60, driver.Snapshot().RemainingSeconds)
}

func TestTick_PublishesProgress(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{})
	events := driver.Subscribe(10)
	driver.Start()
	drain(events)

	driver.tick()

	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, EventProgress, got[0].Type)
	assert.Equal(t, 59, got[0].Snapshot.RemainingSeconds)
	assert.True(t, got[0].Snapshot.Running)
}

func TestTick_TransitionReachesHandlerAndSubscribers(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{})
	events := driver.Subscribe(200)
	var handled []timekeeper.TransitionEvent
	driver.SetHandler(HandlerFunc(func(event timekeeper.TransitionEvent, snapshot timekeeper.Snapshot) {
		handled = append(handled, event)
		assert.Equal(t, 60, snapshot.RemainingSeconds)
	}))
	driver.Start()

	for i := 0; i < 60; i++ {
		driver.tick()
	}

	require.Len(t, handled, 1)
	assert.Equal(t, timekeeper.TransitionEvent{From: timekeeper.StateWork, To: timekeeper.StateWork, Cycles: 1}, handled[0])

	var transitions []Event
	for _, event := range drain(events) {
		if event.Type == EventTransition {
			transitions = append(transitions, event)
		}
	}
	require.Len(t, transitions, 1)
	assert.Equal(t, 1, transitions[0].Snapshot.Cycles)
}

func TestHandlerPanic_DoesNotCorruptState(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{})
	driver.SetHandler(HandlerFunc(func(timekeeper.TransitionEvent, timekeeper.Snapshot) {
		panic("notification backend exploded")
	}))

	require.NotPanics(t, func() {
		assert.True(t, driver.StartBreak())
	})

	snapshot := driver.Snapshot()
	assert.Equal(t, timekeeper.StateShortBreak, snapshot.State)
	assert.True(t, snapshot.Running)

	// The lock must have been released.
	driver.Pause()
	assert.False(t, driver.Snapshot().Running)
}

func TestCommands(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{})

	driver.Toggle()
	assert.True(t, driver.Snapshot().Running)
	driver.Toggle()
	assert.False(t, driver.Snapshot().Running)

	assert.False(t, driver.SkipBreak())
	assert.True(t, driver.StartBreak())
	assert.False(t, driver.StartBreak())
	assert.True(t, driver.SkipBreak())

	config := oneMinuteConfig()
	config.WorkMinutes = 2
	driver.UpdateSettings(config)
	assert.Equal(t, 120, driver.Snapshot().RemainingSeconds)

	driver.Start()
	driver.tick()
	driver.Reset()
	snapshot := driver.Snapshot()
	assert.Equal(t, timekeeper.StateWork, snapshot.State)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 120, snapshot.RemainingSeconds)
}

func TestRunStop(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{TickInterval: 5 * time.Millisecond})
	events := driver.Subscribe(100)
	driver.Start()
	driver.Run()
	driver.Run()

	require.Eventually(t, func() bool {
		return driver.Snapshot().RemainingSeconds < 60
	}, time.Second, 5*time.Millisecond)

	driver.Stop()
	driver.Stop()

	for range events {
	}
	_, open := <-events
	assert.False(t, open)
}

func TestRun_RestartsAfterStop(t *testing.T) {
	driver := New(oneMinuteConfig(), Config{TickInterval: 5 * time.Millisecond})
	driver.Start()
	driver.Run()
	require.Eventually(t, func() bool {
		return driver.Snapshot().RemainingSeconds < 60
	}, time.Second, 5*time.Millisecond)
	driver.Stop()

	stopped := driver.Snapshot().RemainingSeconds
	driver.Run()
	defer driver.Stop()

	require.Eventually(t, func() bool {
		return driver.Snapshot().RemainingSeconds != stopped
	}, time.Second, 5*time.Millisecond)
}
