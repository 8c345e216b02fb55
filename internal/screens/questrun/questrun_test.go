package questrun

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geoquest/internal/clock"
	"github.com/abhisek/geoquest/internal/hints"
	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/randx"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/router"
	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/screen"
	"github.com/abhisek/geoquest/internal/screens/summary"
	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/topics"
)

type stubHints struct{ calls int }

func (h *stubHints) Hint(_ context.Context, _, _ string) (hints.Hint, error) {
	h.calls++
	return hints.Hint{Text: "Split the shape into rectangles.", Source: hints.SourceReference}, nil
}

func newTestEnv(t *testing.T) (*screen.Env, *clock.Fake, *stubHints) {
	t.Helper()
	fake := clock.NewFake(time.Unix(1_700_000_000, 0))
	h := &stubHints{}
	svc := rewards.NewService(nil, nil)
	t.Cleanup(svc.Wait)
	return &screen.Env{
		Player:  rewards.Player{ID: "u-1", Username: "ada"},
		Rewards: svc,
		Hints:   h,
		Rand:    func() *rand.Rand { return randx.New(7) },
		Clock:   fake,
		Log:     zerolog.Nop(),
	}, fake, h
}

func newTestScreen(t *testing.T, cfg quest.Config) (*QuestScreen, *clock.Fake, *stubHints) {
	t.Helper()
	env, fake, h := newTestEnv(t)
	topic, err := topics.Get(topics.Areas)
	require.NoError(t, err)
	s, err := New(env, topic, cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	s.Init()
	return s, fake, h
}

func press(s *QuestScreen, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := s.Update(msg)
	return cmd
}

// answerCorrectly types the keys that submit the right answer.
func answerCorrectly(s *QuestScreen, task taskgen.Task) {
	switch task := task.(type) {
	case *taskgen.MultipleChoice:
		press(s, strconv.Itoa(task.Correct+1))
	case *taskgen.VisualChoice:
		for i, r := range task.Regions {
			if r.ID == task.Answer {
				press(s, strconv.Itoa(i+1))
			}
		}
	case *taskgen.FreeInput:
		for _, r := range task.Answer {
			press(s, string(r))
		}
		press(s, "enter")
	}
}

func TestQuestScreen_PerfectRunReplacesWithSummary(t *testing.T) {
	s, _, _ := newTestScreen(t, quest.Config{NoCheatSheet: true})

	var last tea.Cmd
	for range taskgen.DefaultCount {
		st := s.q.State()
		require.Equal(t, run.PhaseActive, st.Phase)
		answerCorrectly(s, st.Task)
		require.Equal(t, run.PhaseResult, s.q.State().Phase)
		assert.True(t, s.q.State().Last.Correct, "task %s", st.Task.Common().ID)
		last = press(s, "enter")
	}

	require.NotNil(t, last)
	msg, ok := last().(router.ReplaceScreenMsg)
	require.True(t, ok, "completion replaces the quest with the summary")
	_, ok = msg.Screen.(*summary.SummaryScreen)
	assert.True(t, ok)

	out, err := s.q.Outcome()
	require.NoError(t, err)
	assert.True(t, out.Perfect)
	assert.Equal(t, 5*quest.PointsPerTask*2, out.Pot)
}

func TestQuestScreen_WrongAnswerResetsPot(t *testing.T) {
	s, _, _ := newTestScreen(t, quest.Config{})

	answerCorrectly(s, s.q.State().Task)
	press(s, "enter")
	require.Equal(t, quest.PointsPerTask, s.q.State().Score.Points)

	// An empty free input or an untouched picker cannot be wrong on
	// purpose, so submit directly.
	_, err := s.q.Submit("definitely wrong")
	require.NoError(t, err)
	assert.Equal(t, 0, s.q.State().Score.Points)
	assert.Contains(t, s.View(120, 40), "(reset)")
}

func TestQuestScreen_HintOncePerTask(t *testing.T) {
	s, _, h := newTestScreen(t, quest.Config{})

	cmd := press(s, "?")
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, 1, h.calls)
	assert.Contains(t, s.View(120, 40), "Split the shape")

	assert.Nil(t, press(s, "?"))
	assert.Equal(t, 1, h.calls)
	assert.Contains(t, s.notice, "already used")
}

func TestQuestScreen_StaleHintIgnored(t *testing.T) {
	s, _, _ := newTestScreen(t, quest.Config{})
	s.Update(hintMsg{TaskID: "other-task", Hint: hints.Hint{Text: "stale"}})
	assert.Empty(t, s.hint)
}

func TestQuestScreen_TimerExpiryShowsResult(t *testing.T) {
	s, fake, _ := newTestScreen(t, quest.Config{Timed: true})
	require.Contains(t, s.View(120, 40), "⏱")

	fake.Advance(quest.TaskTimeout)
	s.Update(screen.RunChangedMsg{RunID: s.q.ID()})

	st := s.q.State()
	require.Equal(t, run.PhaseResult, st.Phase)
	assert.True(t, st.Last.TimedOut)
	assert.False(t, st.Last.Correct)
	assert.Contains(t, s.View(120, 40), "Time's up!")
}

func TestQuestScreen_EscCancels(t *testing.T) {
	s, _, _ := newTestScreen(t, quest.Config{})

	cmd := press(s, "esc")
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, run.PhaseCancelled, s.q.State().Phase)
}

func TestQuestScreen_CheatSheet(t *testing.T) {
	s, _, _ := newTestScreen(t, quest.Config{})
	assert.True(t, s.sheetOpen)
	assert.Contains(t, s.View(120, 40), s.topic.Reference.Title)

	press(s, "tab")
	assert.False(t, s.sheetOpen)
	assert.NotContains(t, s.View(120, 40), s.topic.Reference.Title)

	hidden, _, _ := newTestScreen(t, quest.Config{NoCheatSheet: true})
	press(hidden, "tab")
	assert.False(t, hidden.sheetOpen)
	for _, kh := range hidden.KeyHints() {
		assert.NotEqual(t, "Tab", kh.Key)
	}
}

func TestQuestScreen_Title(t *testing.T) {
	s, _, _ := newTestScreen(t, quest.Config{})
	assert.True(t, strings.HasSuffix(s.Title(), "Areas & Terms"))
}
