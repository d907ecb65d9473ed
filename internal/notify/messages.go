package notify

import (
	"fmt"

	"pomodoro/internal/core/timekeeper"
)

// AppTitle is the notification title.
const AppTitle = "PyPomodoro"

// Messages holds the user-facing strings for one language.
type Messages struct {
	ToWork       string
	ToShortBreak string
	ToLongBreak  string

	Focus      string
	ShortBreak string
	LongBreak  string
	Cycles     string

	Start      string
	Pause      string
	Paused     string
	Reset      string
	SkipBreak  string
	StartBreak string
	Settings   string
	Quit       string

	WorkMinutes       string
	ShortBreakMinutes string
	LongBreakMinutes  string
	Theme             string
	Language          string
	SoundEnabled      string
	SoundFile         string
	Browse            string
	AutoStartBreak    string
	AutoStartWork     string
	Save              string
	Cancel            string
}

var catalog = map[string]Messages{
	"pt-BR": {
		ToWork:       "Pausa finalizada. Hora de focar.",
		ToShortBreak: "Ciclo completo. Pausa curta.",
		ToLongBreak:  "Ciclo completo. Pausa longa.",
		Focus:        "Foco",
		ShortBreak:   "Pausa curta",
		LongBreak:    "Pausa longa",
		Cycles:       "Ciclos completos: %d",
		Start:        "Iniciar",
		Pause:        "Pausar",
		Paused:       "pausado",
		Reset:        "Resetar",
		SkipBreak:    "Pular pausa",
		StartBreak:   "Iniciar pausa",
		Settings:     "Configuracoes",
		Quit:         "Sair",
	},
	"en": {
		ToWork:       "Break finished. Time to focus.",
		ToShortBreak: "Cycle complete. Short break.",
		ToLongBreak:  "Cycle complete. Long break.",
		Focus:        "Focus",
		ShortBreak:   "Short break",
		LongBreak:    "Long break",
		Cycles:       "Completed cycles: %d",
		Start:        "Start",
		Pause:        "Pause",
		Paused:       "paused",
		Reset:        "Reset",
		SkipBreak:    "Skip break",
		StartBreak:   "Start break",
		Settings:     "Settings",
		Quit:         "Quit",
	},
}

// For returns the strings for language, falling back to pt-BR.
func For(language string) Messages {
	if messages, ok := catalog[language]; ok {
		return messages
	}
	return catalog["pt-BR"]
}

// Transition returns the notification body announcing the new session.
func (messages Messages) Transition(to timekeeper.State) string {
	switch to {
	case timekeeper.StateShortBreak:
		return messages.ToShortBreak
	case timekeeper.StateLongBreak:
		return messages.ToLongBreak
	default:
		return messages.ToWork
	}
}

// StateLabel names a session kind.
func (messages Messages) StateLabel(state timekeeper.State) string {
	switch state {
	case timekeeper.StateShortBreak:
		return messages.ShortBreak
	case timekeeper.StateLongBreak:
		return messages.LongBreak
	default:
		return messages.Focus
	}
}

// CycleCount renders the completed-cycles line.
func (messages Messages) CycleCount(cycles int) string {
	return fmt.Sprintf(messages.Cycles, cycles)
}

// FormatClock renders seconds as MM:SS; negative values show as 00:00.
func FormatClock(totalSeconds int) string {
	totalSeconds = max(0, totalSeconds)
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
