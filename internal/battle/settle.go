package battle

import (
	"math/rand/v2"

	"github.com/abhisek/geoquest/internal/randx"
)

// WinXP is the experience awarded for a won battle.
const WinXP = 300

// Draw returns an opponent score in [0, limit].
type Draw func(limit int) int

// UniformDraw draws opponent scores uniformly from r.
func UniformDraw(r *rand.Rand) Draw {
	return func(limit int) int {
		return randx.IntInRange(r, 0, limit)
	}
}

// FixedDraw always returns score, clamped to [0, limit].
func FixedDraw(score int) Draw {
	return func(limit int) int {
		return min(max(score, 0), limit)
	}
}

// SettleInput is what the battle produced for the player.
type SettleInput struct {
	OpponentID  string
	PlayerScore int
	Perfect     bool
	Wager       int
}

// Settlement is the result of a battle from the player's side.
type Settlement struct {
	Win           bool
	PlayerScore   int
	OpponentScore int
	Skill         int

	// CoinsDelta is +wager on a win and -wager on a loss.
	CoinsDelta int
	XPDelta    int
}

// Settle draws the opponent score from [0, skill] and decides the battle.
// The player wins with a higher score, or with an equal score on a
// perfect run.
func Settle(in SettleInput, skills SkillTable, draw Draw) Settlement {
	skill := skills.Skill(in.OpponentID)
	opponent := draw(skill)

	win := in.PlayerScore > opponent || (in.PlayerScore == opponent && in.Perfect)

	s := Settlement{
		Win:           win,
		PlayerScore:   in.PlayerScore,
		OpponentScore: opponent,
		Skill:         skill,
	}
	if win {
		s.CoinsDelta = in.Wager
		s.XPDelta = WinXP
	} else {
		s.CoinsDelta = -in.Wager
	}
	return s
}
