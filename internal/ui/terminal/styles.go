package terminal

import (
	"pomodoro/internal/ui/preferences"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	app   lipgloss.Style
	state lipgloss.Style
	clock lipgloss.Style
	muted lipgloss.Style
	hot   lipgloss.Style
}

func newStyles(theme string) styles {
	text := lipgloss.Color("#1b1b1b")
	subtle := lipgloss.Color("#6c6c6c")
	accent := lipgloss.Color("#d2452d")
	border := lipgloss.Color("#d0d0d0")
	if theme == preferences.ThemeDark {
		text = lipgloss.Color("#f2f2f2")
		subtle = lipgloss.Color("#a6adc8")
		accent = lipgloss.Color("#fab387")
		border = lipgloss.Color("#3a3a3a")
	}

	return styles{
		app: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(text).
			Padding(1, 4),
		state: lipgloss.NewStyle().Foreground(accent).Bold(true),
		clock: lipgloss.NewStyle().Foreground(text).Bold(true).Padding(1, 0),
		muted: lipgloss.NewStyle().Foreground(subtle),
		hot:   lipgloss.NewStyle().Foreground(accent),
	}
}
