package topic

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/questrun"
	"github.com/abhisek/geoquest/internal/topics"
)

func newTestTopic(t *testing.T) *TopicScreen {
	t.Helper()
	tp, err := topics.Get(topics.Volumes)
	if err != nil {
		t.Fatal(err)
	}
	return New(&screen.Env{Log: zerolog.Nop()}, tp, false)
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestToggles(t *testing.T) {
	s := newTestTopic(t)

	tests := []struct {
		press      rune
		multiplier int
		reward     int
	}{
		{'t', 3, 150},
		{'c', 5, 250},
		{'t', 2, 100},
		{'c', 1, 50},
	}
	for _, tt := range tests {
		s.Update(key(tt.press))
		if got := s.Config().Multiplier(); got != tt.multiplier {
			t.Errorf("after %q: multiplier = %d, want %d", tt.press, got, tt.multiplier)
		}
		if got := s.Config().PotentialReward(); got != tt.reward {
			t.Errorf("after %q: reward = %d, want %d", tt.press, got, tt.reward)
		}
	}
}

func TestViewShowsReward(t *testing.T) {
	s := newTestTopic(t)
	s.Update(key('t'))
	view := s.View(100, 60)
	for _, want := range []string{"Solids & Surfaces", "Potential reward: ● 150", "[x] T"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterPushesQuest(t *testing.T) {
	s := newTestTopic(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should start a quest")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	qs, ok := msg.Screen.(*questrun.QuestScreen)
	if !ok {
		t.Fatalf("expected quest screen, got %T", msg.Screen)
	}
	qs.Close()
}
