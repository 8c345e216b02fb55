// Package topic shows a topic's details and lets the player pick the
// quest modifiers.
package topic

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/questrun"
	"github.com/abhisek/geoquest/internal/topics"
	"github.com/abhisek/geoquest/internal/ui/layout"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

// TopicScreen is the quest lobby for one topic.
type TopicScreen struct {
	env       *screen.Env
	topic     topics.Topic
	cfg       quest.Config
	completed bool
	errMsg    string
}

var _ screen.Screen = (*TopicScreen)(nil)
var _ screen.KeyHintProvider = (*TopicScreen)(nil)

// New creates a TopicScreen. completed marks a topic the player already
// finished.
func New(env *screen.Env, topic topics.Topic, completed bool) *TopicScreen {
	return &TopicScreen{env: env, topic: topic, completed: completed}
}

func (s *TopicScreen) Init() tea.Cmd { return nil }
func (s *TopicScreen) Title() string { return s.topic.Title }

func (s *TopicScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start quest"},
		{Key: "T", Description: "Timed"},
		{Key: "C", Description: "No cheat sheet"},
		{Key: "Esc", Description: "Back"},
	}
}

// Config returns the currently selected modifiers.
func (s *TopicScreen) Config() quest.Config { return s.cfg }

func (s *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "t", "T":
		s.cfg.Timed = !s.cfg.Timed
	case "c", "C":
		s.cfg.NoCheatSheet = !s.cfg.NoCheatSheet
	case "enter":
		qs, err := questrun.New(s.env, s.topic, s.cfg)
		if err != nil {
			s.errMsg = err.Error()
			s.env.Log.Error().Err(err).Str("topic", s.topic.ID).Msg("start quest")
			return s, nil
		}
		return s, router.PushCmd(qs)
	}
	return s, nil
}

func (s *TopicScreen) View(width, height int) string {
	t := s.topic
	cw := min(width-8, 70)

	var b strings.Builder

	title := t.Title
	if s.completed {
		title += "  ✓"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%s · %s · %s", topics.GroupDisplayName(t.Group), t.Category, t.Difficulty.Label())))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)
	b.WriteString(body.Render(t.Description))
	if t.DetailedInfo != "" {
		b.WriteString("\n\n")
		b.WriteString(body.Foreground(theme.TextDim).Render(t.DetailedInfo))
	}

	if len(t.Examples) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Examples"))
		for _, ex := range t.Examples {
			b.WriteString("\n  • " + ex)
		}
	}

	ref := t.Reference
	sheet := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(ref.Title) +
		"\n" + lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(ref.Formula)
	for _, term := range ref.Terms {
		sheet += "\n• " + term
	}
	b.WriteString("\n\n")
	b.WriteString(theme.CheatSheet.Width(cw).Render(sheet))

	b.WriteString("\n\n")
	b.WriteString(renderToggle("T", "Timed (60s per task)", s.cfg.Timed))
	b.WriteString("\n")
	b.WriteString(renderToggle("C", "No cheat sheet", s.cfg.NoCheatSheet))
	b.WriteString("\n\n")

	b.WriteString(theme.Coins.Render(fmt.Sprintf("Potential reward: ● %d", s.cfg.PotentialReward())))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("   ×%d (%s)", s.cfg.Multiplier(), s.cfg.Label())))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return layout.Center(b.String(), width, height)
}

func renderToggle(key, label string, on bool) string {
	box := "[ ]"
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if on {
		box = "[x]"
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	return style.Render(fmt.Sprintf("%s %s  %s", box, key, label))
}
