// Package terminal is a bubbletea front end for the timer. The bubbletea
// event loop is the single owner of the TimeKeeper, so no locking is needed.
package terminal

import (
	"strings"
	"time"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// Model is the bubbletea model for the terminal timer.
type Model struct {
	keeper   *timekeeper.TimeKeeper
	sink     timekeeper.Sink
	messages notify.Messages
	styles   styles
	interval time.Duration
	notice   string
}

// New creates a Model. Transitions are handed to sink off the event loop;
// sink may be nil.
func New(keeper *timekeeper.TimeKeeper, sink timekeeper.Sink, language, theme string) Model {
	return Model{
		keeper:   keeper,
		sink:     sink,
		messages: notify.For(language),
		styles:   newStyles(theme),
		interval: time.Second,
	}
}

// Run starts the program and blocks until the user quits.
func Run(model Model) error {
	_, err := tea.NewProgram(model).Run()
	return err
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return model.tick()
}

// Update implements tea.Model.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		event, ok := model.keeper.Tick()
		if ok {
			return model.transitioned(event), tea.Batch(model.tick(), model.dispatch(event))
		}
		return model, model.tick()
	case tea.KeyMsg:
		return model.handleKey(msg)
	}
	return model, nil
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return model, tea.Quit
	case " ", "enter":
		if model.keeper.Running() {
			model.keeper.Pause()
		} else {
			model.keeper.Start()
		}
	case "r":
		model.keeper.Reset()
		model.notice = ""
	case "s":
		if event, ok := model.keeper.SkipBreak(); ok {
			return model.transitioned(event), model.dispatch(event)
		}
	case "b":
		if event, ok := model.keeper.StartBreak(); ok {
			return model.transitioned(event), model.dispatch(event)
		}
	}
	return model, nil
}

func (model Model) transitioned(event timekeeper.TransitionEvent) Model {
	model.notice = model.messages.Transition(event.To)
	return model
}

func (model Model) tick() tea.Cmd {
	return tea.Tick(model.interval, func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}

func (model Model) dispatch(event timekeeper.TransitionEvent) tea.Cmd {
	if model.sink == nil {
		return nil
	}
	sink := model.sink
	return func() tea.Msg {
		sink.OnTransition(event)
		return nil
	}
}

// View implements tea.Model.
func (model Model) View() string {
	snapshot := model.keeper.Snapshot()
	messages := model.messages

	toggle := messages.Start
	if snapshot.Running {
		toggle = messages.Pause
	}
	keys := []string{"space " + toggle, "r " + messages.Reset}
	if snapshot.State.IsBreak() {
		keys = append(keys, "s "+messages.SkipBreak)
	} else {
		keys = append(keys, "b "+messages.StartBreak)
	}
	keys = append(keys, "q "+messages.Quit)

	lines := []string{
		model.styles.state.Render(messages.StateLabel(snapshot.State)),
		model.styles.clock.Render(notify.FormatClock(snapshot.RemainingSeconds)),
		model.styles.muted.Render(messages.CycleCount(snapshot.Cycles)),
	}
	if model.notice != "" {
		lines = append(lines, "", model.styles.hot.Render(model.notice))
	}
	lines = append(lines, "", model.styles.muted.Render(strings.Join(keys, " · ")))

	return model.styles.app.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)) + "\n"
}
