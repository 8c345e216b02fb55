// Package welcome shows the splash animation before the home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const compassArt = `     N
     ▲
 ╭───┼───╮
 │   │   │
W◀───◉───▶E
 │  ╱│   │
 ╰─╱─┼───╯
     ▼
     S`

// sparkle frames cycle around the compass
var sparkleFrames = []string{"△", "◇", "○", "□"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	username     string
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen greeting username that will transition to
// the screen produced by homeFactory.
func New(username string, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		username:    username,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.tick()
}

func (w *WelcomeScreen) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, w.tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.ReplaceCmd(w.homeFactory())
}

func (w *WelcomeScreen) View(width, height int) string {
	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(compassArt)

	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkleFrames[frame])
		s2 := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(sparkleFrames[(frame+2)%len(sparkleFrames)])

		lines := strings.Split(rendered, "\n")
		for i := 2; i < len(lines); i += 2 {
			lines[i] = s1 + "   " + lines[i] + "   " + s2
			s1, s2 = s2, s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections := []string{rendered}

	if w.elapsed >= phase2End {
		greeting := "Ready for a quest?"
		if w.username != "" {
			greeting = "Welcome back, " + w.username + "!"
		}
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(greeting),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
