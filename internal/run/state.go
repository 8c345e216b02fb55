package run

import (
	"time"

	"github.com/abhisek/geoquest/internal/taskgen"
)

// Phase is the current phase of a run.
type Phase int

const (
	PhaseReady     Phase = iota // Created, not started
	PhaseIntro                  // Non-interactive announcement, no evaluation
	PhaseActive                 // Awaiting input for the current task
	PhaseResult                 // Showing the current task's result
	PhaseCompleted              // Last result acknowledged
	PhaseCancelled              // Discarded, no reward
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseIntro:
		return "intro"
	case PhaseActive:
		return "active"
	case PhaseResult:
		return "result"
	case PhaseCompleted:
		return "completed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Finished reports whether the run can no longer change.
func (p Phase) Finished() bool {
	return p == PhaseCompleted || p == PhaseCancelled
}

// Score is the running score a Scorer updates after each evaluation.
type Score struct {
	// Points is the policy-specific total: the pot for quests, the correct
	// count for battles.
	Points int

	// Perfect stays true until the first incorrect answer.
	Perfect bool
}

// Scorer applies a scoring policy to an evaluated attempt.
type Scorer interface {
	Apply(s *Score, correct bool)
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(s *Score, correct bool)

func (f ScorerFunc) Apply(s *Score, correct bool) { f(s, correct) }

// Attempt records one evaluated answer.
type Attempt struct {
	TaskID  string
	Answer  string
	Correct bool

	// TimedOut is set when the countdown expired and the draft was
	// evaluated automatically.
	TimedOut bool

	Elapsed time.Duration
}

// State is a snapshot of a run for rendering.
type State struct {
	ID        string
	Phase     Phase
	Index     int
	Total     int
	Task      taskgen.Task
	Score     Score
	Correct   int
	Timed     bool
	Remaining time.Duration
	Draft     string
	HintUsed  bool

	// Last is the most recent attempt, nil before the first evaluation.
	Last *Attempt
}

// Summary holds the data displayed when a run ends.
type Summary struct {
	ID       string
	Total    int
	Correct  int
	Accuracy float64
	Score    Score
	Duration time.Duration
	Attempts []Attempt
}
