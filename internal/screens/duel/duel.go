// Package duel is the screen that plays a battle.
package duel

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/play"
	"github.com/abhisek/geoquest/internal/screens/summary"
	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/ui/layout"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

// BattleScreen runs one battle and settles it.
type BattleScreen struct {
	env      *screen.Env
	b        *battle.Battle
	answer   play.Answer
	finished bool
}

var _ screen.Screen = (*BattleScreen)(nil)
var _ screen.KeyHintProvider = (*BattleScreen)(nil)
var _ screen.EscCapturer = (*BattleScreen)(nil)
var _ screen.Closer = (*BattleScreen)(nil)

// New generates the battle tasks for req's topic and activates req.
func New(env *screen.Env, req *battle.Request) (*BattleScreen, error) {
	tasks := taskgen.Generate(req.TopicID, battle.TaskCount, env.NewRand())
	id := uuid.New().String()

	b, err := battle.New(req, tasks,
		run.WithID(id),
		run.WithClock(env.GetClock()),
		run.WithNotify(func() { env.Bus.Send(screen.RunChangedMsg{RunID: id}) }),
	)
	if err != nil {
		return nil, fmt.Errorf("start battle: %w", err)
	}
	return &BattleScreen{env: env, b: b}, nil
}

func (s *BattleScreen) Init() tea.Cmd {
	s.b.Start()
	if s.env.Rewards != nil {
		s.env.Rewards.BattleStarted(context.Background(), s.env.Player, s.b.Request())
	}
	return nil
}

func (s *BattleScreen) Title() string {
	return "Battle · " + s.b.Request().TopicTitle
}

// CapturesEsc keeps a running battle on screen; the wager is locked in.
func (s *BattleScreen) CapturesEsc() bool { return true }

// Close stops the countdown when the screen leaves the stack.
func (s *BattleScreen) Close() { s.b.Close() }

func (s *BattleScreen) KeyHints() []layout.KeyHint {
	switch s.b.State().Phase {
	case run.PhaseIntro:
		return []layout.KeyHint{{Key: "…", Description: "Get ready"}}
	case run.PhaseResult:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	}
}

func (s *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RunChangedMsg:
		if msg.RunID != s.b.ID() {
			return s, nil
		}
		return s, s.answer.Sync(s.taskIfActive())

	case tea.KeyPressMsg:
		if s.finished {
			return s, nil
		}
		switch s.b.State().Phase {
		case run.PhaseActive:
			draft, submit, cmd := s.answer.Update(msg)
			if submit {
				if _, err := s.b.Submit(draft); err != nil {
					s.env.Log.Debug().Err(err).Msg("submit")
				}
				return s, cmd
			}
			if err := s.b.SetInput(draft); err != nil {
				s.env.Log.Debug().Err(err).Msg("set input")
			}
			return s, cmd

		case run.PhaseResult:
			if msg.String() != "enter" {
				return s, nil
			}
			done, err := s.b.Next()
			if err != nil {
				s.env.Log.Debug().Err(err).Msg("next")
				return s, nil
			}
			if done {
				return s, s.settle()
			}
			return s, s.answer.Sync(s.taskIfActive())
		}
	}
	return s, nil
}

// taskIfActive returns the current task once the intro is over.
func (s *BattleScreen) taskIfActive() taskgen.Task {
	st := s.b.State()
	if st.Phase == run.PhaseIntro || st.Phase == run.PhaseReady {
		return nil
	}
	return st.Task
}

func (s *BattleScreen) settle() tea.Cmd {
	s.finished = true
	req := s.b.Request()
	st, err := s.b.Settle(s.env.SkillTable(), s.env.OpponentDraw())
	if err != nil {
		s.env.Log.Error().Err(err).Str("battle", req.ID).Msg("settle battle")
		return router.PopCmd
	}
	sum := s.b.Summary()

	d := rewards.ForBattle(st)
	if s.env.Rewards != nil {
		d = s.env.Rewards.BattleSettled(context.Background(), s.env.Player, req, st)
	}
	return router.ReplaceCmd(summary.New(summary.FromBattle(req, st, sum, d)))
}

func (s *BattleScreen) View(width, height int) string {
	st := s.b.State()
	if st.Phase == run.PhaseIntro || st.Phase == run.PhaseReady {
		return layout.Center(s.renderIntro(), width, height)
	}

	req := s.b.Request()
	left := fmt.Sprintf("%s  %s %d", play.Progress(st), s.env.Player.Username, st.Score.Points)
	right := fmt.Sprintf("%s %s ?", req.OpponentAvatar, req.OpponentName)

	var b strings.Builder
	b.WriteString(play.StatusLine(left, right, width))
	b.WriteString("\n")
	if timer := play.Timer(st, battle.TaskTimeout, width); timer != "" {
		b.WriteString(timer)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.answer.View(st, width))
	return b.String()
}

func (s *BattleScreen) renderIntro() string {
	req := s.b.Request()
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	player := name.Render(s.env.Player.Username)
	opponent := name.Render(req.OpponentAvatar + " " + req.OpponentName)
	vs := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Padding(0, 3).Render("VS")

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, player, vs, opponent),
		"",
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(req.TopicTitle),
		theme.Coins.Render(fmt.Sprintf("Wager ● %d", req.Wager)),
		"",
		theme.Hint.Render(fmt.Sprintf("%d tasks, %.0fs each", battle.TaskCount, battle.TaskTimeout.Seconds())),
	}
	return theme.Card.BorderForeground(theme.Accent).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}
