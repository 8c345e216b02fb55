// Package arena lets the player pick an opponent and a topic for a battle.
package arena

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/duel"
	"github.com/abhisek/geoquest/internal/topics"
	"github.com/abhisek/geoquest/internal/ui/layout"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

type step int

const (
	pickOpponent step = iota
	pickTopic
)

type coinsLoadedMsg struct {
	Coins int
	Err   error
}

// ArenaScreen is the battle lobby.
type ArenaScreen struct {
	env       *screen.Env
	opponents []battle.Opponent
	topics    []topics.Topic

	step     step
	opponent int
	topic    int

	coins  int
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ArenaScreen)(nil)
var _ screen.KeyHintProvider = (*ArenaScreen)(nil)
var _ screen.EscCapturer = (*ArenaScreen)(nil)

// New creates an ArenaScreen over the built-in opponents.
func New(env *screen.Env) *ArenaScreen {
	return &ArenaScreen{
		env:       env,
		opponents: battle.DefaultOpponents(),
		topics:    topics.All(),
	}
}

func (s *ArenaScreen) Init() tea.Cmd {
	return s.loadCoins()
}

func (s *ArenaScreen) loadCoins() tea.Cmd {
	users := s.env.Users
	id := s.env.Player.ID
	if users == nil {
		return nil
	}
	return func() tea.Msg {
		u, err := users.Get(context.Background(), id)
		if err != nil {
			return coinsLoadedMsg{Err: err}
		}
		return coinsLoadedMsg{Coins: u.Coins}
	}
}

func (s *ArenaScreen) Title() string { return "Battle Arena" }

// CapturesEsc steps back from the topic picker before leaving.
func (s *ArenaScreen) CapturesEsc() bool { return s.step == pickTopic }

func (s *ArenaScreen) KeyHints() []layout.KeyHint {
	if s.step == pickTopic {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Topic"},
			{Key: "Enter", Description: "Challenge"},
			{Key: "Esc", Description: "Opponents"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Opponent"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ArenaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coinsLoadedMsg:
		if msg.Err != nil {
			s.env.Log.Warn().Err(msg.Err).Msg("load coins")
			return s, nil
		}
		s.coins = msg.Coins
		s.loaded = true
		return s, nil

	case screen.BalanceMsg:
		s.coins = msg.Coins
		s.loaded = true
		return s, nil

	case router.ResumedMsg:
		return s, s.loadCoins()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ArenaScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	cursor, n := &s.opponent, len(s.opponents)
	if s.step == pickTopic {
		cursor, n = &s.topic, len(s.topics)
	}

	switch msg.String() {
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
	case "down", "j":
		if *cursor < n-1 {
			*cursor++
		}
	case "esc":
		s.step = pickOpponent
		s.errMsg = ""
	case "enter":
		if s.step == pickOpponent {
			s.step = pickTopic
			return s, nil
		}
		return s, s.challenge()
	}
	return s, nil
}

func (s *ArenaScreen) challenge() tea.Cmd {
	opp := s.opponents[s.opponent]
	topic := s.topics[s.topic]

	req, err := battle.NewRequest(battle.Challenger{
		ID:       s.env.Player.ID,
		Username: s.env.Player.Username,
		Coins:    s.coins,
	}, opp, topic)
	if errors.Is(err, battle.ErrInsufficientCoins) {
		s.errMsg = fmt.Sprintf("You need ● %d coins to challenge. Complete a quest first!", battle.Wager)
		return nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	bs, err := duel.New(s.env, req)
	if err != nil {
		s.errMsg = err.Error()
		s.env.Log.Error().Err(err).Msg("start battle")
		return nil
	}
	s.errMsg = ""
	s.step = pickOpponent
	return router.PushCmd(bs)
}

func (s *ArenaScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("⚔  BATTLE ARENA  ⚔"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Wager ● %d · win +%d XP · 5 tasks, 20s each", battle.Wager, battle.WinXP)))
	b.WriteString("\n\n")

	skills := s.env.SkillTable()
	for i, o := range s.opponents {
		line := fmt.Sprintf("%s %-12s  %5d XP   skill %s", o.Avatar, o.Name, o.XP, skillBar(skills.Skill(o.ID)))
		b.WriteString(s.row(line, i == s.opponent, s.step == pickOpponent))
		b.WriteString("\n")
	}

	if s.step == pickTopic {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Choose the battlefield"))
		b.WriteString("\n")
		for i, t := range s.topics {
			b.WriteString(s.row(t.Title, i == s.topic, true))
			b.WriteString("\n")
		}
	}

	if s.loaded {
		b.WriteString("\n")
		b.WriteString(theme.Coins.Render(fmt.Sprintf("Your coins: ● %d", s.coins)))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return layout.Center(b.String(), width, height)
}

func (s *ArenaScreen) row(text string, selected, active bool) string {
	switch {
	case selected && active:
		return theme.Selected.Render("▸ " + text)
	case selected:
		return lipgloss.NewStyle().Foreground(theme.Text).Render("• " + text)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + text)
	}
}

func skillBar(skill int) string {
	skill = min(max(skill, 0), battle.TaskCount)
	return strings.Repeat("★", skill) + strings.Repeat("☆", battle.TaskCount-skill)
}
