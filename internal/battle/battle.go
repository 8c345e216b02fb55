// Package battle runs timed five-task battles against synthetic opponents
// and settles the wager.
package battle

import (
	"fmt"
	"time"

	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/taskgen"
)

const (
	// TaskCount is the fixed number of tasks in a battle.
	TaskCount = 5

	// IntroDuration is the non-interactive announcement before the first
	// task.
	IntroDuration = 2500 * time.Millisecond

	// TaskTimeout is the per-task countdown; battles are always timed.
	TaskTimeout = 20 * time.Second
)

// Battle wraps a run.Machine with the battle rules: one point per correct
// answer, no multiplier, no pot reset, no cheat sheet, no hints.
type Battle struct {
	*run.Machine
	req *Request
}

var countScorer = run.ScorerFunc(func(s *run.Score, correct bool) {
	if correct {
		s.Points++
		return
	}
	s.Perfect = false
})

// New creates a battle for req over exactly TaskCount tasks and activates
// the request.
func New(req *Request, tasks []taskgen.Task, opts ...run.Option) (*Battle, error) {
	if len(tasks) != TaskCount {
		return nil, fmt.Errorf("new battle: need %d tasks, got %d", TaskCount, len(tasks))
	}
	m, err := run.New(tasks, run.Config{
		TaskTimeout: TaskTimeout,
		Intro:       IntroDuration,
		Scorer:      countScorer,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("new battle: %w", err)
	}
	// The request turns active only once a battle exists for it.
	if err := req.Activate(); err != nil {
		m.Close()
		return nil, fmt.Errorf("new battle: %w", err)
	}
	return &Battle{Machine: m, req: req}, nil
}

// Request returns the battle's request.
func (b *Battle) Request() *Request { return b.req }

// Settle decides a completed battle and records the result on the
// request.
func (b *Battle) Settle(skills SkillTable, draw Draw) (Settlement, error) {
	st := b.State()
	if st.Phase != run.PhaseCompleted {
		return Settlement{}, fmt.Errorf("battle %s: settle in phase %s", b.req.ID, st.Phase)
	}

	s := Settle(SettleInput{
		OpponentID:  b.req.OpponentID,
		PlayerScore: st.Score.Points,
		Perfect:     st.Score.Perfect,
		Wager:       b.req.Wager,
	}, skills, draw)

	if err := b.req.Complete(s); err != nil {
		return Settlement{}, err
	}
	return s, nil
}
