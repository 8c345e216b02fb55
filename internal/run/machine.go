// Package run implements the execution engine shared by quests and
// battles: a cursor over generated tasks, an optional per-task countdown,
// and a result phase between tasks.
package run

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/geoquest/internal/clock"
	"github.com/abhisek/geoquest/internal/taskgen"
)

// tick is the countdown resolution.
const tick = time.Second

var (
	ErrNoTasks          = errors.New("run: no tasks")
	ErrNotStarted       = errors.New("run: not started")
	ErrNotAwaitingInput = errors.New("run: not awaiting input")
	ErrNotShowingResult = errors.New("run: not showing a result")
	ErrFinished         = errors.New("run: already finished")
	ErrHintUsed         = errors.New("run: hint already used for this task")
	ErrHintsDisabled    = errors.New("run: hints are not available")
)

// Config fixes the timing and scoring rules of a run.
type Config struct {
	// TaskTimeout is the per-task countdown. Zero disables it.
	TaskTimeout time.Duration

	// Intro is the length of the announcement phase. Zero skips it.
	Intro time.Duration

	// Hints allows one hint per task.
	Hints bool

	Scorer Scorer
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock sets the clock used for countdowns. Defaults to clock.Real().
func WithClock(c clock.Clock) Option {
	return func(m *Machine) { m.clock = c }
}

// WithNotify registers a callback invoked after timer-driven changes
// (intro end, countdown tick, expiry). It runs outside the machine lock
// and must not block.
func WithNotify(f func()) Option {
	return func(m *Machine) { m.notify = f }
}

// WithID overrides the generated run ID.
func WithID(id string) Option {
	return func(m *Machine) { m.id = id }
}

// Machine drives one player through a fixed task sequence. It owns at most
// one scheduled timer; every transition out of PhaseActive or PhaseIntro
// stops it.
type Machine struct {
	mu     sync.Mutex
	id     string
	tasks  []taskgen.Task
	cfg    Config
	clock  clock.Clock
	notify func()

	phase     Phase
	index     int
	score     Score
	correct   int
	remaining time.Duration
	draft     string
	hintUsed  bool
	attempts  []Attempt
	startedAt time.Time
	taskStart time.Time
	endedAt   time.Time

	timer clock.Timer
	// gen invalidates callbacks of stopped timers that already fired and
	// are waiting for the lock.
	gen uint64
}

// New creates a machine over tasks. The slice is copied.
func New(tasks []taskgen.Task, cfg Config, opts ...Option) (*Machine, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	if cfg.Scorer == nil {
		return nil, fmt.Errorf("run: scorer is required")
	}

	m := &Machine{
		id:    uuid.New().String(),
		tasks: slices.Clone(tasks),
		cfg:   cfg,
		clock: clock.Real(),
		score: Score{Perfect: true},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// ID returns the run ID.
func (m *Machine) ID() string { return m.id }

// Start enters the intro phase, or the first task when there is no intro.
// Calling Start more than once has no effect.
func (m *Machine) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseReady {
		return
	}

	m.startedAt = m.clock.Now()
	if m.cfg.Intro > 0 {
		m.phase = PhaseIntro
		m.schedule(m.cfg.Intro, m.onIntroDone)
		return
	}
	m.beginTask()
}

// SetInput records the draft answer evaluated if the countdown expires.
func (m *Machine) SetInput(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requirePhase(PhaseActive, ErrNotAwaitingInput); err != nil {
		return err
	}
	m.draft = s
	return nil
}

// Submit evaluates answer against the current task and moves to the
// result phase.
func (m *Machine) Submit(answer string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requirePhase(PhaseActive, ErrNotAwaitingInput); err != nil {
		return Attempt{}, err
	}
	m.draft = answer
	return m.evaluate(answer, false), nil
}

// Next acknowledges the current result. It advances to the next task, or
// completes the run after the last one and reports done.
func (m *Machine) Next() (done bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requirePhase(PhaseResult, ErrNotShowingResult); err != nil {
		return false, err
	}

	if m.index+1 >= len(m.tasks) {
		m.stopTimer()
		m.phase = PhaseCompleted
		m.endedAt = m.clock.Now()
		return true, nil
	}
	m.index++
	m.beginTask()
	return false, nil
}

// Cancel discards the run.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase.Finished() {
		return ErrFinished
	}
	m.stopTimer()
	m.phase = PhaseCancelled
	m.endedAt = m.clock.Now()
	return nil
}

// Close stops any outstanding timer. An unfinished run is cancelled.
// Safe to call multiple times.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimer()
	if !m.phase.Finished() {
		m.phase = PhaseCancelled
		m.endedAt = m.clock.Now()
	}
}

// UseHint marks the current task's single hint as used.
func (m *Machine) UseHint() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.cfg.Hints {
		return ErrHintsDisabled
	}
	if err := m.requirePhase(PhaseActive, ErrNotAwaitingInput); err != nil {
		return err
	}
	if m.hintUsed {
		return ErrHintUsed
	}
	m.hintUsed = true
	return nil
}

// State returns a snapshot of the run.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := State{
		ID:        m.id,
		Phase:     m.phase,
		Index:     m.index,
		Total:     len(m.tasks),
		Task:      m.tasks[m.index],
		Score:     m.score,
		Correct:   m.correct,
		Timed:     m.cfg.TaskTimeout > 0,
		Remaining: m.remaining,
		Draft:     m.draft,
		HintUsed:  m.hintUsed,
	}
	if n := len(m.attempts); n > 0 {
		last := m.attempts[n-1]
		s.Last = &last
	}
	return s
}

// Summary returns the totals of the run so far.
func (m *Machine) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	end := m.endedAt
	if end.IsZero() {
		end = m.clock.Now()
	}
	var duration time.Duration
	if !m.startedAt.IsZero() {
		duration = end.Sub(m.startedAt)
	}

	var accuracy float64
	if len(m.attempts) > 0 {
		accuracy = float64(m.correct) / float64(len(m.attempts))
	}

	return Summary{
		ID:       m.id,
		Total:    len(m.tasks),
		Correct:  m.correct,
		Accuracy: accuracy,
		Score:    m.score,
		Duration: duration,
		Attempts: slices.Clone(m.attempts),
	}
}

// requirePhase returns nil if the machine is in want, ErrFinished if the
// run is over, ErrNotStarted before Start, and otherwise wrong.
// Caller holds m.mu.
func (m *Machine) requirePhase(want Phase, wrong error) error {
	switch {
	case m.phase == want:
		return nil
	case m.phase.Finished():
		return ErrFinished
	case m.phase == PhaseReady:
		return ErrNotStarted
	default:
		return wrong
	}
}

// beginTask resets per-task state and arms the countdown.
// Caller holds m.mu.
func (m *Machine) beginTask() {
	m.stopTimer()
	m.phase = PhaseActive
	m.draft = ""
	m.hintUsed = false
	m.taskStart = m.clock.Now()
	if m.cfg.TaskTimeout > 0 {
		m.remaining = m.cfg.TaskTimeout
		m.schedule(tick, m.onTick)
	}
}

// evaluate scores answer and enters the result phase.
// Caller holds m.mu.
func (m *Machine) evaluate(answer string, timedOut bool) Attempt {
	m.stopTimer()

	task := m.tasks[m.index]
	correct := taskgen.IsCorrect(task, answer)
	m.cfg.Scorer.Apply(&m.score, correct)
	if correct {
		m.correct++
	}

	a := Attempt{
		TaskID:   task.Common().ID,
		Answer:   answer,
		Correct:  correct,
		TimedOut: timedOut,
		Elapsed:  m.clock.Now().Sub(m.taskStart),
	}
	m.attempts = append(m.attempts, a)
	m.phase = PhaseResult
	return a
}

// schedule arms the single timer handle. Caller holds m.mu.
func (m *Machine) schedule(d time.Duration, fire func(gen uint64)) {
	m.stopTimer()
	gen := m.gen
	m.timer = m.clock.AfterFunc(d, func() { fire(gen) })
}

// stopTimer cancels the outstanding handle, if any. Caller holds m.mu.
func (m *Machine) stopTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.gen++
}

func (m *Machine) onIntroDone(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.phase != PhaseIntro {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	m.beginTask()
	m.mu.Unlock()
	m.changed()
}

func (m *Machine) onTick(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.phase != PhaseActive {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	m.remaining -= tick
	if m.remaining <= 0 {
		m.remaining = 0
		m.evaluate(m.draft, true)
	} else {
		m.schedule(tick, m.onTick)
	}
	m.mu.Unlock()
	m.changed()
}

func (m *Machine) changed() {
	if m.notify != nil {
		m.notify()
	}
}
