package terminal

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func newModel(sink timekeeper.Sink) Model {
	config := model.EngineConfig{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, AutoStartBreak: true, AutoStartWork: true}
	return New(timekeeper.New(config, nil), sink, "en", "dark")
}

func update(t *testing.T, current Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := current.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func TestInit_SchedulesTick(t *testing.T) {
	assert.NotNil(t, newModel(nil).Init())
}

func TestSpace_TogglesRunning(t *testing.T) {
	current := newModel(nil)

	current, _ = update(t, current, keyPress(" "))
	assert.True(t, current.keeper.Running())

	current, _ = update(t, current, keyPress(" "))
	assert.False(t, current.keeper.Running())
}

func TestTick_AdvancesAndDispatchesTransitions(t *testing.T) {
	var received []timekeeper.TransitionEvent
	current := newModel(timekeeper.SinkFunc(func(event timekeeper.TransitionEvent) {
		received = append(received, event)
	}))
	current, _ = update(t, current, keyPress(" "))

	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		current, cmd = update(t, current, tickMsg(time.Now()))
		require.NotNil(t, cmd, "ticking must keep going")
	}

	assert.Equal(t, "Break finished. Time to focus.", current.notice)
	assert.Equal(t, 1, current.keeper.Cycles())

	// The batch carries the dispatch command; run every sub-command that is
	// not a timer so the sink sees the event.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, sub := range batch {
		if sub == nil {
			continue
		}
		done := make(chan tea.Msg, 1)
		go func(run tea.Cmd) { done <- run() }(sub)
		select {
		case <-done:
		case <-time.After(50 * time.Millisecond):
		}
	}
	require.Len(t, received, 1)
	assert.Equal(t, timekeeper.StateWork, received[0].To)
}

func TestKeys_BreakAndSkip(t *testing.T) {
	current := newModel(nil)

	current, _ = update(t, current, keyPress("b"))
	assert.Equal(t, timekeeper.StateShortBreak, current.keeper.State())
	assert.Equal(t, "Cycle complete. Short break.", current.notice)

	current, _ = update(t, current, keyPress("b"))
	assert.Equal(t, timekeeper.StateShortBreak, current.keeper.State())

	current, _ = update(t, current, keyPress("s"))
	assert.Equal(t, timekeeper.StateWork, current.keeper.State())

	current, _ = update(t, current, keyPress("r"))
	assert.Empty(t, current.notice)
	assert.False(t, current.keeper.Running())
}

func TestQuit(t *testing.T) {
	_, cmd := update(t, newModel(nil), keyPress("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	current := newModel(nil)

	view := current.View()

	assert.Contains(t, view, "Focus")
	assert.Contains(t, view, "01:00")
	assert.Contains(t, view, "Completed cycles: 0")
	assert.Contains(t, view, "b Start break")
	assert.NotContains(t, view, "s Skip break")
}
