// Package leaderboard ranks players and bots by XP and shows the latest
// broadcasts.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/store"
	"github.com/abhisek/geoquest/internal/ui/layout"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

const (
	rankLimit = 10
	feedLimit = 6
)

type loadedMsg struct {
	Users []store.User
	Feed  []store.Message
	Err   error
}

// LeaderboardScreen shows the ranking and the broadcast feed.
type LeaderboardScreen struct {
	users    store.UserRepo
	messages store.MessageRepo
	playerID string

	ranked []store.User
	feed   []store.Message
	loaded bool
	errMsg string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen highlighting playerID. messages may be
// nil.
func New(users store.UserRepo, messages store.MessageRepo, playerID string) *LeaderboardScreen {
	return &LeaderboardScreen{users: users, messages: messages, playerID: playerID}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	users, messages := s.users, s.messages
	return func() tea.Msg {
		ctx := context.Background()
		ranked, err := users.Leaderboard(ctx, rankLimit)
		if err != nil {
			return loadedMsg{Err: err}
		}
		var feed []store.Message
		if messages != nil {
			// The feed is decoration; a failure only hides it.
			feed, _ = messages.RecentMessages(ctx, feedLimit)
		}
		return loadedMsg{Users: ranked, Feed: feed}
	}
}

func (s *LeaderboardScreen) Title() string { return "Leaderboard" }

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.ranked = msg.Users
		s.feed = msg.Feed
		s.loaded = true
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg), width, height)
	}
	if !s.loaded {
		return layout.Center(theme.Hint.Render("Loading leaderboard..."), width, height)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("🏆  HALL OF FAME"))
	b.WriteString("\n\n")

	for i, u := range s.ranked {
		level := rewards.LevelFor(u.XP)
		line := fmt.Sprintf("%2d. %s %-14s %6d XP   %s", i+1, avatar(u), u.Username, u.XP, level.Title)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case u.ID == s.playerID:
			style = theme.Selected
			line += "  ← you"
		case u.IsBot:
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if len(s.feed) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Divider(width))
		b.WriteString("\n")
		for _, m := range s.feed {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("%s  %s %s", m.Timestamp.Local().Format("15:04"), m.Username, m.Text)))
			b.WriteString("\n")
		}
	}

	return layout.Center(b.String(), width, height)
}

func avatar(u store.User) string {
	if u.Avatar != "" {
		return u.Avatar
	}
	return "🙂"
}
