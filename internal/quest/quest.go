// Package quest runs a single-player quest: five tasks under chosen
// modifiers with a pot that a single miss forfeits.
package quest

import (
	"fmt"

	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/taskgen"
)

// Outcome is emitted when a quest completes.
type Outcome struct {
	RunID      string
	TopicID    string
	Config     Config
	Multiplier int

	// Pot is the final coin pot; zero after any miss.
	Pot     int
	Perfect bool

	Correct int
	Total   int
}

// Quest wraps a run.Machine with the quest scoring policy.
type Quest struct {
	*run.Machine
	topicID string
	cfg     Config
}

// potScorer adds PointsPerTask times the multiplier on a correct answer.
// The first miss zeroes the pot and it stays zero for the rest of the run.
func potScorer(multiplier int) run.Scorer {
	return run.ScorerFunc(func(s *run.Score, correct bool) {
		if correct && s.Perfect {
			s.Points += PointsPerTask * multiplier
			return
		}
		if !correct {
			s.Points = 0
			s.Perfect = false
		}
	})
}

// New creates a quest for topicID over tasks.
func New(topicID string, tasks []taskgen.Task, cfg Config, opts ...run.Option) (*Quest, error) {
	rc := run.Config{
		Hints:  true,
		Scorer: potScorer(cfg.Multiplier()),
	}
	if cfg.Timed {
		rc.TaskTimeout = TaskTimeout
	}

	m, err := run.New(tasks, rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("new quest: %w", err)
	}
	return &Quest{Machine: m, topicID: topicID, cfg: cfg}, nil
}

// TopicID returns the quest's topic.
func (q *Quest) TopicID() string { return q.topicID }

// Config returns the quest's modifiers.
func (q *Quest) Config() Config { return q.cfg }

// CheatSheetAvailable reports whether the reference panel may be shown.
func (q *Quest) CheatSheetAvailable() bool { return !q.cfg.NoCheatSheet }

// Outcome returns the completion result. It errors unless the quest has
// completed.
func (q *Quest) Outcome() (Outcome, error) {
	st := q.State()
	if st.Phase != run.PhaseCompleted {
		return Outcome{}, fmt.Errorf("quest %s: outcome requested in phase %s", st.ID, st.Phase)
	}
	return Outcome{
		RunID:      st.ID,
		TopicID:    q.topicID,
		Config:     q.cfg,
		Multiplier: q.cfg.Multiplier(),
		Pot:        st.Score.Points,
		Perfect:    st.Score.Perfect,
		Correct:    st.Correct,
		Total:      st.Total,
	}, nil
}
