// Package home is the main menu: player card, topics and the way to the
// arena.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/arena"
	"github.com/abhisek/geoquest/internal/screens/history"
	"github.com/abhisek/geoquest/internal/screens/leaderboard"
	"github.com/abhisek/geoquest/internal/screens/topic"
	"github.com/abhisek/geoquest/internal/topics"
	"github.com/abhisek/geoquest/internal/ui/components"
	"github.com/abhisek/geoquest/internal/ui/layout"
)

// tallMenuHeight is the content height needed for bordered buttons.
const tallMenuHeight = 50

type playerStats struct {
	Username   string
	Coins      int
	XP         int
	Completed  int
	TopicCount int
}

type statsLoadedMsg struct {
	Coins     int
	XP        int
	Completed []string
	Err       error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	env       *screen.Env
	topics    []topics.Topic
	menu      components.Menu
	stats     playerStats
	completed map[string]bool
	loaded    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	all := topics.All()
	h := &HomeScreen{
		env:       env,
		topics:    all,
		completed: make(map[string]bool),
		stats: playerStats{
			Username:   env.Player.Username,
			TopicCount: len(all),
		},
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	env := h.env
	items := make([]components.MenuItem, 0, len(h.topics)+4)

	for _, t := range h.topics {
		badge := ""
		if h.completed[t.ID] {
			badge = "✓"
		}
		done := h.completed[t.ID]
		items = append(items, components.MenuItem{
			Label: t.Title,
			Badge: badge,
			Action: func() tea.Cmd {
				return router.PushCmd(topic.New(env, t, done))
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "⚔ BATTLE ARENA", Action: func() tea.Cmd {
			return router.PushCmd(arena.New(env))
		}},
		components.MenuItem{Label: "LEADERBOARD", Disabled: env.Users == nil, Action: func() tea.Cmd {
			return router.PushCmd(leaderboard.New(env.Users, env.Messages, env.Player.ID))
		}},
		components.MenuItem{Label: "HISTORY", Disabled: env.Events == nil, Action: func() tea.Cmd {
			return router.PushCmd(history.New(env.Events, env.Player.ID))
		}},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	users := h.env.Users
	id := h.env.Player.ID
	if users == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		u, err := users.Get(ctx, id)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		done, err := users.CompletedTopics(ctx, id)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Coins: u.Coins, XP: u.XP, Completed: done}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			h.env.Log.Warn().Err(msg.Err).Msg("load player stats")
			return h, nil
		}
		h.stats.Coins = msg.Coins
		h.stats.XP = msg.XP
		h.completed = make(map[string]bool, len(msg.Completed))
		for _, id := range msg.Completed {
			h.completed[id] = true
		}
		h.stats.Completed = len(h.completed)
		h.loaded = true

		selected := h.menu.Selected
		h.menu = components.NewMenu(h.menuItems())
		h.menu.Selected = selected
		return h, nil

	case screen.BalanceMsg:
		h.stats.Coins = msg.Coins
		h.stats.XP = msg.XP
		return h, nil

	case router.ResumedMsg:
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case !h.loaded:
		return MascotIdle
	case h.stats.Completed == h.stats.TopicCount:
		return MascotCelebrating
	case h.stats.Coins < battle.Wager:
		return MascotBroke
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to judge
	// the terminal size.
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	sections = append(sections, renderPlayerCard(h.stats, cw, compact))

	if height >= tallMenuHeight {
		sections = append(sections, renderArcadeMenu(h.menu, cw))
	} else {
		sections = append(sections, renderArcadeMenuCompact(h.menu, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
