package battle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/geoquest/internal/topics"
)

// Wager is the fixed stake of every battle. A challenger needs at least
// this many coins to issue a challenge.
const Wager = 100

// ErrInsufficientCoins is returned when the challenger cannot cover the
// wager.
var ErrInsufficientCoins = errors.New("battle: not enough coins for the wager")

// Status is the lifecycle tag of a Request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Challenger is the player issuing a challenge.
type Challenger struct {
	ID       string
	Username string
	Coins    int
}

// Result summarizes a settled battle.
type Result struct {
	WinnerID        string
	ChallengerScore int
	OpponentScore   int
}

// Request identifies a challenge.
type Request struct {
	ID             string
	ChallengerID   string
	OpponentID     string
	OpponentName   string
	OpponentAvatar string
	TopicID        string
	TopicTitle     string
	Wager          int
	Status         Status
	Result         *Result
}

// NewRequest issues a pending challenge against opponent on topic.
func NewRequest(challenger Challenger, opponent Opponent, topic topics.Topic) (*Request, error) {
	if challenger.Coins < Wager {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientCoins, challenger.Coins, Wager)
	}
	return &Request{
		ID:             uuid.New().String(),
		ChallengerID:   challenger.ID,
		OpponentID:     opponent.ID,
		OpponentName:   opponent.Name,
		OpponentAvatar: opponent.Avatar,
		TopicID:        topic.ID,
		TopicTitle:     topic.Title,
		Wager:          Wager,
		Status:         StatusPending,
	}, nil
}

// Activate marks a pending request as being played.
func (r *Request) Activate() error {
	if r.Status != StatusPending {
		return fmt.Errorf("battle %s: activate from status %s", r.ID, r.Status)
	}
	r.Status = StatusActive
	return nil
}

// Complete records the settlement and marks the request completed.
func (r *Request) Complete(s Settlement) error {
	if r.Status == StatusCompleted {
		return fmt.Errorf("battle %s: already completed", r.ID)
	}
	winner := r.OpponentID
	if s.Win {
		winner = r.ChallengerID
	}
	r.Status = StatusCompleted
	r.Result = &Result{
		WinnerID:        winner,
		ChallengerScore: s.PlayerScore,
		OpponentScore:   s.OpponentScore,
	}
	return nil
}
