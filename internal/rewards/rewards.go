// Package rewards turns quest and battle results into balance changes and
// dispatches them to persistence, broadcast and the activity log.
package rewards

import (
	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/quest"
)

const (
	// PerfectQuestXP is awarded for a quest with every task correct.
	PerfectQuestXP = 200

	// QuestXP is awarded for any other completed quest.
	QuestXP = 50
)

// Delta is a change to a player's profile.
type Delta struct {
	Coins int
	XP    int

	// CompletedTopic is marked completed when non-empty.
	CompletedTopic string
}

// Balance is a player's profile after a delta was applied.
type Balance struct {
	Coins int
	XP    int
}

// ForQuest returns the delta for a completed quest. Coins are only paid
// out for a perfect quest with a positive pot; the topic is always marked
// completed.
func ForQuest(o quest.Outcome) Delta {
	d := Delta{XP: QuestXP, CompletedTopic: o.TopicID}
	if o.Perfect {
		d.XP = PerfectQuestXP
		if o.Pot > 0 {
			d.Coins = o.Pot
		}
	}
	return d
}

// ForBattle returns the delta for a settled battle.
func ForBattle(s battle.Settlement) Delta {
	return Delta{Coins: s.CoinsDelta, XP: s.XPDelta}
}
