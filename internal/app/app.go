// Package app wires the screens into the Bubble Tea program.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/home"
	"github.com/abhisek/geoquest/internal/screens/welcome"
	"github.com/abhisek/geoquest/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	status layout.Status
	width  int
	height int
}

// NewAppModel creates the root model starting at the welcome splash.
func NewAppModel(env *screen.Env) AppModel {
	splash := welcome.New(env.Player.Username, func() screen.Screen { return home.New(env) })
	return AppModel{
		env:    env,
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadBalance())
}

func (m AppModel) loadBalance() tea.Cmd {
	users := m.env.Users
	id := m.env.Player.ID
	if users == nil {
		return nil
	}
	return func() tea.Msg {
		u, err := users.Get(context.Background(), id)
		if err != nil {
			m.env.Log.Warn().Err(err).Msg("load balance failed")
			return nil
		}
		return screen.BalanceMsg{Coins: u.Coins, XP: u.XP}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.BalanceMsg:
		m.status.Coins = msg.Coins
		m.status.XP = msg.XP
		m.status.Level = rewards.LevelFor(msg.XP).Title

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.EscCapturer); ok && c.CapturesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.PopCmd
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status, m.width)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	if hints == nil {
		if m.router.Depth() > 1 {
			hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
		} else {
			hints = []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}}
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits. Pending
// settlements are flushed before returning.
func Run(ctx context.Context, env *screen.Env) error {
	if env.Bus == nil {
		env.Bus = &screen.Bus{}
	}
	model := NewAppModel(env)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	env.Bus.Attach(p.Send)

	_, err := p.Run()
	env.Bus.Attach(nil)
	model.router.Close()
	if env.Rewards != nil {
		env.Rewards.Wait()
	}
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
