package quest

import "time"

const (
	// PointsPerTask is the base pot increment for a correct answer.
	PointsPerTask = 10

	// TaskTimeout is the per-task countdown of a timed quest.
	TaskTimeout = 60 * time.Second

	// rewardPreviewBase scales the multiplier into the reward shown before
	// a quest starts.
	rewardPreviewBase = 50
)

// Config holds the modifiers chosen before a quest starts.
type Config struct {
	// Timed imposes a per-task countdown.
	Timed bool

	// NoCheatSheet hides the reference panel.
	NoCheatSheet bool
}

// Multiplier returns the reward multiplier for the modifiers: 1 with none,
// 3 when timed, 2 without cheat sheet, 5 with both.
func (c Config) Multiplier() int {
	switch {
	case c.Timed && c.NoCheatSheet:
		return 5
	case c.Timed:
		return 3
	case c.NoCheatSheet:
		return 2
	default:
		return 1
	}
}

// PotentialReward is the coin reward advertised for a quest with these
// modifiers.
func (c Config) PotentialReward() int {
	return rewardPreviewBase * c.Multiplier()
}

// Label returns a short description of the active modifiers.
func (c Config) Label() string {
	switch {
	case c.Timed && c.NoCheatSheet:
		return "timed, no cheat sheet"
	case c.Timed:
		return "timed"
	case c.NoCheatSheet:
		return "no cheat sheet"
	default:
		return "relaxed"
	}
}
