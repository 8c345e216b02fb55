// Package summary shows the result of a finished quest or battle.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/ui/layout"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

// Result is what the summary screen displays.
type Result struct {
	Heading  string
	Subject  string
	Win      bool
	Correct  int
	Total    int
	Duration time.Duration

	// Details are label/value rows specific to the run type.
	Details [][2]string

	Delta     rewards.Delta
	Narrative string
}

// FromQuest builds the result of a completed quest.
func FromQuest(topicTitle string, out quest.Outcome, sum run.Summary, d rewards.Delta) Result {
	heading := "Quest complete!"
	if out.Perfect {
		heading = "Perfect quest!"
	}
	return Result{
		Heading:  heading,
		Subject:  topicTitle,
		Win:      out.Perfect,
		Correct:  out.Correct,
		Total:    out.Total,
		Duration: sum.Duration,
		Details: [][2]string{
			{"Modifiers", out.Config.Label()},
			{"Multiplier", fmt.Sprintf("×%d", out.Multiplier)},
			{"Pot", fmt.Sprintf("%d", out.Pot)},
		},
		Delta:     d,
		Narrative: rewards.QuestNarrative(topicTitle),
	}
}

// FromBattle builds the result of a settled battle.
func FromBattle(req *battle.Request, st battle.Settlement, sum run.Summary, d rewards.Delta) Result {
	heading := "Defeat"
	if st.Win {
		heading = "Victory!"
	}
	return Result{
		Heading:  heading,
		Subject:  fmt.Sprintf("%s vs %s %s", req.TopicTitle, req.OpponentAvatar, req.OpponentName),
		Win:      st.Win,
		Correct:  sum.Correct,
		Total:    sum.Total,
		Duration: sum.Duration,
		Details: [][2]string{
			{"Score", fmt.Sprintf("%d : %d", st.PlayerScore, st.OpponentScore)},
			{"Wager", fmt.Sprintf("%d", req.Wager)},
		},
		Delta:     d,
		Narrative: rewards.BattleNarrative(st.Win, req.OpponentName),
	}
}

// SummaryScreen displays a Result.
type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscCapturer = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(r Result) *SummaryScreen {
	return &SummaryScreen{result: r}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

// CapturesEsc makes esc return home instead of to the topic screen.
func (s *SummaryScreen) CapturesEsc() bool { return true }

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	headingColor := theme.Primary
	if r.Win {
		headingColor = theme.ArcadeYellow
	}
	b.WriteString(center.Foreground(headingColor).Bold(true).Render(r.Heading))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Render(r.Subject))
	b.WriteString("\n\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	var accuracy float64
	if r.Total > 0 {
		accuracy = float64(r.Correct) / float64(r.Total) * 100
	}
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf(
		"Correct: %d/%d        Accuracy: %.0f%%        Time: %d:%02d",
		r.Correct, r.Total, accuracy, mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, layout.Divider(width)))
	b.WriteString("\n")
	for _, row := range r.Details {
		line := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14).Render(row[0]) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(row[1])
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, layout.Divider(width)))
	b.WriteString("\n\n")

	b.WriteString(center.Render(
		theme.Coins.Render(fmt.Sprintf("● %+d coins", r.Delta.Coins)) + "     " +
			theme.XP.Render(fmt.Sprintf("✦ %+d XP", r.Delta.XP))))
	b.WriteString("\n\n")

	if r.Narrative != "" {
		b.WriteString(center.Inherit(theme.Hint).Render("“" + r.Narrative + "”"))
	}

	return b.String()
}
