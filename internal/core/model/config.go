package model

// Default session lengths in minutes.
const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 20
)

// EngineConfig contains runtime settings for the TimeKeeper state machine.
// Minute values below 1 are treated as 1 when converted to seconds.
type EngineConfig struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int

	AutoStartBreak bool
	AutoStartWork  bool
}

// DefaultEngineConfig returns the classic 25/5/20 schedule with auto-start on.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		WorkMinutes:       DefaultWorkMinutes,
		ShortBreakMinutes: DefaultShortBreakMinutes,
		LongBreakMinutes:  DefaultLongBreakMinutes,
		AutoStartBreak:    true,
		AutoStartWork:     true,
	}
}
