package rewards

import (
	"testing"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/quest"
)

func TestForQuest(t *testing.T) {
	tests := []struct {
		name      string
		out       quest.Outcome
		wantCoins int
		wantXP    int
	}{
		{"perfect with pot", quest.Outcome{TopicID: "u1", Pot: 250, Perfect: true}, 250, PerfectQuestXP},
		{"perfect empty pot", quest.Outcome{TopicID: "u1", Pot: 0, Perfect: true}, 0, PerfectQuestXP},
		{"not perfect keeps no coins", quest.Outcome{TopicID: "u1", Pot: 40, Perfect: false}, 0, QuestXP},
		{"all wrong", quest.Outcome{TopicID: "u1"}, 0, QuestXP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ForQuest(tt.out)
			if d.Coins != tt.wantCoins {
				t.Errorf("coins = %d, want %d", d.Coins, tt.wantCoins)
			}
			if d.XP != tt.wantXP {
				t.Errorf("xp = %d, want %d", d.XP, tt.wantXP)
			}
			if d.CompletedTopic != "u1" {
				t.Errorf("completed topic = %q, want u1", d.CompletedTopic)
			}
		})
	}
}

func TestForBattle(t *testing.T) {
	win := ForBattle(battle.Settlement{Win: true, CoinsDelta: 100, XPDelta: battle.WinXP})
	if win.Coins != 100 || win.XP != 300 || win.CompletedTopic != "" {
		t.Errorf("win delta = %+v", win)
	}
	loss := ForBattle(battle.Settlement{CoinsDelta: -100})
	if loss.Coins != -100 || loss.XP != 0 {
		t.Errorf("loss delta = %+v", loss)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp        int
		wantIndex int
		wantTitle string
	}{
		{0, 0, "Messy Bun"},
		{99, 0, "Messy Bun"},
		{100, 1, "First Try"},
		{450, 4, "Getting Ready"},
		{100000, len(ladder) - 1, "After Midnight"},
		{-50, 0, "Messy Bun"},
	}
	for _, tt := range tests {
		l := LevelFor(tt.xp)
		if l.Index != tt.wantIndex || l.Title != tt.wantTitle {
			t.Errorf("LevelFor(%d) = %d %q, want %d %q", tt.xp, l.Index, l.Title, tt.wantIndex, tt.wantTitle)
		}
	}
}

func TestProgress(t *testing.T) {
	if in, maxed := Progress(250); in != 50 || maxed {
		t.Errorf("Progress(250) = %d, %t", in, maxed)
	}
	if _, maxed := Progress(XPPerLevel * len(ladder)); !maxed {
		t.Error("expected maxed ladder")
	}
}

func TestLevels(t *testing.T) {
	levels := Levels()
	if len(levels) != len(ladder) {
		t.Fatalf("got %d levels", len(levels))
	}
	for i, l := range levels {
		if l.Index != i {
			t.Errorf("level %d has index %d", i, l.Index)
		}
	}
}

func TestNarratives(t *testing.T) {
	if got := QuestNarrative("Similarity"); got != `completed the quest "Similarity"! 🌟` {
		t.Errorf("quest narrative = %q", got)
	}
	if got := BattleNarrative(true, "Lukas_9b"); got != "defeated Lukas_9b in a math battle! 🏆" {
		t.Errorf("win narrative = %q", got)
	}
	if got := BattleNarrative(false, "Lukas_9b"); got != "was beaten by Lukas_9b in a battle. 💀" {
		t.Errorf("loss narrative = %q", got)
	}
}
