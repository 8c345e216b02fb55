// Package questrun is the screen that plays a quest.
package questrun

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/geoquest/internal/hints"
	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/play"
	"github.com/abhisek/geoquest/internal/screens/summary"
	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/topics"
	"github.com/abhisek/geoquest/internal/ui/layout"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

const hintTimeout = 20 * time.Second

type hintMsg struct {
	TaskID string
	Hint   hints.Hint
	Err    error
}

// QuestScreen runs one quest and hands the outcome to the rewards service.
type QuestScreen struct {
	env   *screen.Env
	topic topics.Topic
	q     *quest.Quest

	answer      play.Answer
	sheetOpen   bool
	hint        string
	hintPending bool
	notice      string
	finished    bool
}

var _ screen.Screen = (*QuestScreen)(nil)
var _ screen.KeyHintProvider = (*QuestScreen)(nil)
var _ screen.EscCapturer = (*QuestScreen)(nil)
var _ screen.Closer = (*QuestScreen)(nil)

// New generates a task batch for topic and prepares a quest with cfg.
func New(env *screen.Env, topic topics.Topic, cfg quest.Config) (*QuestScreen, error) {
	tasks := taskgen.Generate(topic.ID, taskgen.DefaultCount, env.NewRand())
	id := uuid.New().String()

	q, err := quest.New(topic.ID, tasks, cfg,
		run.WithID(id),
		run.WithClock(env.GetClock()),
		run.WithNotify(func() { env.Bus.Send(screen.RunChangedMsg{RunID: id}) }),
	)
	if err != nil {
		return nil, fmt.Errorf("start quest %s: %w", topic.ID, err)
	}
	return &QuestScreen{
		env:       env,
		topic:     topic,
		q:         q,
		sheetOpen: q.CheatSheetAvailable(),
	}, nil
}

func (s *QuestScreen) Init() tea.Cmd {
	s.q.Start()
	s.env.Log.Info().
		Str("run", s.q.ID()).
		Str("topic", s.topic.ID).
		Str("modifiers", s.q.Config().Label()).
		Msg("quest started")
	return s.answer.Sync(s.q.State().Task)
}

func (s *QuestScreen) Title() string {
	return "Quest · " + s.topic.Title
}

// CapturesEsc lets the screen cancel the quest before leaving.
func (s *QuestScreen) CapturesEsc() bool { return true }

// Close stops the countdown when the screen leaves the stack.
func (s *QuestScreen) Close() { s.q.Close() }

func (s *QuestScreen) KeyHints() []layout.KeyHint {
	st := s.q.State()
	if st.Phase == run.PhaseResult {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}, {Key: "Esc", Description: "Abandon"}}
	}
	kh := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if s.env.Hints != nil && !st.HintUsed {
		kh = append(kh, layout.KeyHint{Key: "?", Description: "Hint"})
	}
	if s.q.CheatSheetAvailable() {
		kh = append(kh, layout.KeyHint{Key: "Tab", Description: "Cheat sheet"})
	}
	return append(kh, layout.KeyHint{Key: "Esc", Description: "Abandon"})
}

func (s *QuestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RunChangedMsg:
		if msg.RunID != s.q.ID() {
			return s, nil
		}
		return s, s.answer.Sync(s.q.State().Task)

	case hintMsg:
		s.hintPending = false
		if msg.TaskID != s.answer.TaskID() {
			return s, nil
		}
		if msg.Err != nil {
			s.notice = "No hint available right now."
			return s, nil
		}
		s.hint = msg.Hint.Text
		if s.env.Rewards != nil {
			s.env.Rewards.HintRequested(context.Background(), s.env.Player, s.topic.ID, string(msg.Hint.Source))
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	st := s.q.State()

	if msg.String() == "esc" {
		if err := s.q.Cancel(); err != nil {
			s.env.Log.Debug().Err(err).Msg("cancel quest")
		}
		s.env.Log.Info().Str("run", s.q.ID()).Int("task", st.Index+1).Msg("quest abandoned")
		return s, router.PopCmd
	}

	switch st.Phase {
	case run.PhaseActive:
		switch msg.String() {
		case "?":
			return s, s.requestHint(st)
		case "tab":
			if s.q.CheatSheetAvailable() {
				s.sheetOpen = !s.sheetOpen
			}
			return s, nil
		}

		draft, submit, cmd := s.answer.Update(msg)
		if submit {
			if _, err := s.q.Submit(draft); err != nil {
				s.env.Log.Debug().Err(err).Msg("submit")
			}
			return s, cmd
		}
		if err := s.q.SetInput(draft); err != nil {
			s.env.Log.Debug().Err(err).Msg("set input")
		}
		return s, cmd

	case run.PhaseResult:
		if msg.String() != "enter" {
			return s, nil
		}
		done, err := s.q.Next()
		if err != nil {
			s.env.Log.Debug().Err(err).Msg("next")
			return s, nil
		}
		s.hint, s.notice = "", ""
		if done {
			return s, s.complete()
		}
		return s, s.answer.Sync(s.q.State().Task)
	}
	return s, nil
}

func (s *QuestScreen) requestHint(st run.State) tea.Cmd {
	if s.env.Hints == nil || s.hintPending {
		return nil
	}
	if err := s.q.UseHint(); err != nil {
		if errors.Is(err, run.ErrHintUsed) {
			s.notice = "You already used the hint for this task."
		}
		return nil
	}
	s.hintPending = true

	provider := s.env.Hints
	title := s.topic.Title
	h := st.Task.Common()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
		defer cancel()
		hint, err := provider.Hint(ctx, title, h.Question)
		return hintMsg{TaskID: h.ID, Hint: hint, Err: err}
	}
}

func (s *QuestScreen) complete() tea.Cmd {
	s.finished = true
	out, err := s.q.Outcome()
	if err != nil {
		s.env.Log.Error().Err(err).Msg("quest outcome")
		return router.PopCmd
	}
	sum := s.q.Summary()

	var res summary.Result
	if s.env.Rewards != nil {
		d := s.env.Rewards.QuestCompleted(context.Background(), s.env.Player, s.topic.Title, out, sum)
		res = summary.FromQuest(s.topic.Title, out, sum, d)
	} else {
		res = summary.FromQuest(s.topic.Title, out, sum, rewards.ForQuest(out))
	}
	return router.ReplaceCmd(summary.New(res))
}

func (s *QuestScreen) View(width, height int) string {
	st := s.q.State()

	right := fmt.Sprintf("Pot %d  ×%d", st.Score.Points, s.q.Config().Multiplier())
	if !st.Score.Perfect {
		right += "  (reset)"
	}

	var b strings.Builder
	b.WriteString(play.StatusLine(play.Progress(st), right, width))
	b.WriteString("\n")
	if timer := play.Timer(st, quest.TaskTimeout, width); timer != "" {
		b.WriteString(timer)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	main := s.answer.View(st, s.mainWidth(width))
	if s.sheetOpen && s.q.CheatSheetAvailable() {
		if width >= layout.CompactWidthThreshold {
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", s.renderSheet())
		} else {
			main += "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderSheet())
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, main))

	switch {
	case s.hintPending:
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render("Thinking of a hint...")))
	case s.hint != "" && st.Phase == run.PhaseActive:
		b.WriteString("\n\n")
		box := theme.Card.BorderForeground(theme.Accent).Width(min(width-8, 70)).Render("💡 " + s.hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	case s.notice != "":
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(s.notice)))
	}
	return b.String()
}

// mainWidth leaves room for the cheat sheet beside the task.
func (s *QuestScreen) mainWidth(width int) int {
	if s.sheetOpen && s.q.CheatSheetAvailable() && width >= layout.CompactWidthThreshold {
		return width - sheetWidth - 4
	}
	return width
}

const sheetWidth = 34

func (s *QuestScreen) renderSheet() string {
	ref := s.topic.Reference
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(ref.Title))
	if ref.Formula != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(ref.Formula))
	}
	for _, term := range ref.Terms {
		b.WriteString("\n• ")
		b.WriteString(term)
	}
	return theme.CheatSheet.Width(sheetWidth).Render(b.String())
}
