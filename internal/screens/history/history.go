// Package history lists the player's past quests and battles.
package history

import (
	"context"
	"fmt"
	"image/color"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/store"
	"github.com/abhisek/geoquest/internal/topics"
	"github.com/abhisek/geoquest/internal/ui/layout"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

const historyLimit = 50

// Entry is one finished quest or battle.
type Entry struct {
	Timestamp time.Time
	Summary   string
	Details   []string
	Won       bool
}

type historyLoadedMsg struct {
	Entries []Entry
	Err     error
}

// HistoryScreen displays past quests and battles.
type HistoryScreen struct {
	events   store.EventRepo
	userID   string
	entries  []Entry
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen for userID.
func New(events store.EventRepo, userID string) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		userID:   userID,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events, userID := s.events, s.userID
	return func() tea.Msg {
		entries, err := Load(context.Background(), events, userID, historyLimit)
		return historyLoadedMsg{Entries: entries, Err: err}
	}
}

// Load returns the newest quests and completed battles of userID, newest
// first.
func Load(ctx context.Context, events store.EventRepo, userID string, limit int) ([]Entry, error) {
	opts := store.QueryOpts{Limit: limit, UserID: userID}

	quests, err := events.QueryQuestEvents(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load quest history: %w", err)
	}
	battles, err := events.QueryBattleEvents(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load battle history: %w", err)
	}

	entries := make([]Entry, 0, len(quests)+len(battles))
	for _, q := range quests {
		entries = append(entries, questEntry(q))
	}
	for _, b := range battles {
		if b.Status != string(battle.StatusCompleted) {
			continue
		}
		entries = append(entries, battleEntry(b))
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func topicTitle(id string) string {
	if t, err := topics.Get(id); err == nil {
		return t.Title
	}
	return id
}

func questEntry(q store.QuestEventRecord) Entry {
	cfg := quest.Config{Timed: q.Timed, NoCheatSheet: q.NoCheatSheet}
	mark := "○"
	if q.Perfect {
		mark = "★"
	}
	return Entry{
		Timestamp: q.Timestamp,
		Won:       q.Perfect,
		Summary: fmt.Sprintf("%s Quest   %-22s %d/%d  %+d coins",
			mark, topicTitle(q.TopicID), q.Correct, q.Total, q.CoinsAwarded),
		Details: []string{
			fmt.Sprintf("Modifiers: %s (×%d)", cfg.Label(), q.Multiplier),
			fmt.Sprintf("Pot: %d   XP: +%d   Time: %d:%02d", q.Pot, q.XPAwarded, q.DurationSecs/60, q.DurationSecs%60),
		},
	}
}

func battleEntry(b store.BattleEventRecord) Entry {
	won := b.WinnerID == b.ChallengerID
	mark, coins := "✗", -b.Wager
	if won {
		mark, coins = "⚔", b.Wager
	}
	return Entry{
		Timestamp: b.Timestamp,
		Won:       won,
		Summary: fmt.Sprintf("%s Battle  %-22s %d:%d  %+d coins",
			mark, topicTitle(b.TopicID), b.ChallengerScore, b.OpponentScore, coins),
		Details: []string{
			"Opponent: " + b.OpponentName,
			fmt.Sprintf("Wager: %d", b.Wager),
		},
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Start a quest!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s", prefix, e.Timestamp.Local().Format("Jan 02 15:04"), e.Summary)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range e.Details {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(detailColor(e.Won)).Render("      "+d)))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func detailColor(won bool) color.Color {
	if won {
		return theme.Success
	}
	return theme.TextDim
}
