package run

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geoquest/internal/clock"
	"github.com/abhisek/geoquest/internal/taskgen"
)

// countScorer adds one point per correct answer.
var countScorer = ScorerFunc(func(s *Score, correct bool) {
	if correct {
		s.Points++
	} else {
		s.Perfect = false
	}
})

func freeTask(id, answer string) taskgen.Task {
	return &taskgen.FreeInput{
		Header: taskgen.Header{ID: id, Topic: "u3", Question: "q", Explanation: "e"},
		Answer: answer,
	}
}

func testTasks() []taskgen.Task {
	return []taskgen.Task{freeTask("t0", "10"), freeTask("t1", "20"), freeTask("t2", "30")}
}

func newTestMachine(t *testing.T, cfg Config, opts ...Option) (*Machine, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(time.Unix(1_700_000_000, 0))
	if cfg.Scorer == nil {
		cfg.Scorer = countScorer
	}
	m, err := New(testTasks(), cfg, append([]Option{WithClock(fake)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, fake
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, Config{Scorer: countScorer})
	assert.ErrorIs(t, err, ErrNoTasks)

	_, err = New(testTasks(), Config{})
	assert.Error(t, err)
}

func TestMachine_HappyPath(t *testing.T) {
	m, _ := newTestMachine(t, Config{})

	_, err := m.Submit("10")
	assert.ErrorIs(t, err, ErrNotStarted)

	m.Start()
	assert.Equal(t, PhaseActive, m.State().Phase)

	for i, answer := range []string{"10", "20", "30"} {
		a, err := m.Submit(answer)
		require.NoError(t, err)
		assert.True(t, a.Correct)
		assert.Equal(t, PhaseResult, m.State().Phase)

		done, err := m.Next()
		require.NoError(t, err)
		assert.Equal(t, i == 2, done)
	}

	st := m.State()
	assert.Equal(t, PhaseCompleted, st.Phase)
	assert.Equal(t, 3, st.Score.Points)
	assert.True(t, st.Score.Perfect)

	sum := m.Summary()
	assert.Equal(t, 3, sum.Correct)
	assert.InDelta(t, 1.0, sum.Accuracy, 1e-9)
	assert.Len(t, sum.Attempts, 3)
}

func TestMachine_PhaseGuards(t *testing.T) {
	m, _ := newTestMachine(t, Config{})
	m.Start()

	_, err := m.Next()
	assert.ErrorIs(t, err, ErrNotShowingResult)

	_, err = m.Submit("nope")
	require.NoError(t, err)

	_, err = m.Submit("10")
	assert.ErrorIs(t, err, ErrNotAwaitingInput)
	assert.ErrorIs(t, m.SetInput("x"), ErrNotAwaitingInput)

	require.NoError(t, m.Cancel())
	assert.ErrorIs(t, m.Cancel(), ErrFinished)
	_, err = m.Next()
	assert.ErrorIs(t, err, ErrFinished)
	assert.Equal(t, PhaseCancelled, m.State().Phase)
}

func TestMachine_TimerExpiryEvaluatesDraftOnce(t *testing.T) {
	m, fake := newTestMachine(t, Config{TaskTimeout: 60 * time.Second})
	m.Start()

	fake.Advance(59 * time.Second)
	st := m.State()
	assert.Equal(t, PhaseActive, st.Phase)
	assert.Equal(t, time.Second, st.Remaining)

	fake.Advance(time.Second)
	st = m.State()
	require.Equal(t, PhaseResult, st.Phase)
	require.NotNil(t, st.Last)
	assert.True(t, st.Last.TimedOut)
	assert.False(t, st.Last.Correct)
	assert.Equal(t, "", st.Last.Answer)

	// No further evaluations while the result is shown.
	fake.Advance(5 * time.Minute)
	assert.Len(t, m.Summary().Attempts, 1)
	assert.Equal(t, 0, fake.Pending())
}

func TestMachine_TimerExpiryMatchesEmptySubmission(t *testing.T) {
	expired, fake := newTestMachine(t, Config{TaskTimeout: 20 * time.Second})
	expired.Start()
	fake.Advance(20 * time.Second)

	submitted, _ := newTestMachine(t, Config{TaskTimeout: 20 * time.Second})
	submitted.Start()
	_, err := submitted.Submit("")
	require.NoError(t, err)

	a, b := expired.State(), submitted.State()
	assert.Equal(t, b.Phase, a.Phase)
	assert.Equal(t, b.Score, a.Score)
	assert.Equal(t, b.Last.Correct, a.Last.Correct)
}

func TestMachine_TimerExpiryUsesDraft(t *testing.T) {
	m, fake := newTestMachine(t, Config{TaskTimeout: 10 * time.Second})
	m.Start()
	require.NoError(t, m.SetInput(" 10 "))
	fake.Advance(10 * time.Second)

	st := m.State()
	require.NotNil(t, st.Last)
	assert.True(t, st.Last.Correct)
	assert.True(t, st.Last.TimedOut)
}

func TestMachine_SubmitCancelsTimer(t *testing.T) {
	m, fake := newTestMachine(t, Config{TaskTimeout: 60 * time.Second})
	m.Start()
	fake.Advance(5 * time.Second)

	_, err := m.Submit("10")
	require.NoError(t, err)
	assert.Equal(t, 0, fake.Pending())

	fake.Advance(2 * time.Minute)
	assert.Len(t, m.Summary().Attempts, 1)

	_, err = m.Next()
	require.NoError(t, err)
	st := m.State()
	assert.Equal(t, 60*time.Second, st.Remaining, "countdown restarts per task")
	assert.Equal(t, 1, fake.Pending())
}

func TestMachine_CloseStopsTimer(t *testing.T) {
	m, fake := newTestMachine(t, Config{TaskTimeout: 60 * time.Second})
	m.Start()
	m.Close()
	assert.Equal(t, 0, fake.Pending())
	assert.Equal(t, PhaseCancelled, m.State().Phase)
	m.Close()
}

func TestMachine_Intro(t *testing.T) {
	notified := 0
	m, fake := newTestMachine(t, Config{Intro: 2500 * time.Millisecond, TaskTimeout: 20 * time.Second},
		WithNotify(func() { notified++ }))
	m.Start()
	assert.Equal(t, PhaseIntro, m.State().Phase)

	_, err := m.Submit("10")
	assert.ErrorIs(t, err, ErrNotAwaitingInput)

	fake.Advance(2499 * time.Millisecond)
	assert.Equal(t, PhaseIntro, m.State().Phase)

	fake.Advance(time.Millisecond)
	st := m.State()
	assert.Equal(t, PhaseActive, st.Phase)
	assert.Equal(t, 20*time.Second, st.Remaining)
	assert.Equal(t, 1, notified)
}

func TestMachine_CancelDuringIntro(t *testing.T) {
	m, fake := newTestMachine(t, Config{Intro: 2500 * time.Millisecond})
	m.Start()
	require.NoError(t, m.Cancel())
	fake.Advance(time.Minute)
	assert.Equal(t, PhaseCancelled, m.State().Phase)
}

func TestMachine_Hints(t *testing.T) {
	m, _ := newTestMachine(t, Config{Hints: true})
	m.Start()

	require.NoError(t, m.UseHint())
	assert.ErrorIs(t, m.UseHint(), ErrHintUsed)
	assert.True(t, m.State().HintUsed)

	_, _ = m.Submit("10")
	_, _ = m.Next()
	assert.False(t, m.State().HintUsed)
	assert.NoError(t, m.UseHint())

	noHints, _ := newTestMachine(t, Config{})
	noHints.Start()
	assert.ErrorIs(t, noHints.UseHint(), ErrHintsDisabled)
}

func TestMachine_StartIsIdempotent(t *testing.T) {
	m, fake := newTestMachine(t, Config{TaskTimeout: 60 * time.Second})
	m.Start()
	m.Start()
	assert.Equal(t, 1, fake.Pending())
}
