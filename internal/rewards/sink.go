package rewards

import (
	"context"
	"fmt"

	"github.com/abhisek/geoquest/internal/store"
)

// PersistenceSink applies profile deltas.
type PersistenceSink interface {
	SubmitResult(ctx context.Context, userID string, d Delta) (Balance, error)
}

// BroadcastSink publishes narratives to other players.
type BroadcastSink interface {
	Broadcast(ctx context.Context, username, narrative string) error
}

// StoreSink persists deltas through a store.UserRepo.
type StoreSink struct {
	Users store.UserRepo
}

func (s StoreSink) SubmitResult(ctx context.Context, userID string, d Delta) (Balance, error) {
	u, err := s.Users.ApplyDelta(ctx, userID, d.Coins, d.XP)
	if err != nil {
		return Balance{}, fmt.Errorf("submit result: %w", err)
	}
	if d.CompletedTopic != "" {
		if err := s.Users.MarkCompleted(ctx, userID, d.CompletedTopic); err != nil {
			return Balance{}, fmt.Errorf("submit result: %w", err)
		}
	}
	return Balance{Coins: u.Coins, XP: u.XP}, nil
}

// MessageSink broadcasts narratives as system messages.
type MessageSink struct {
	Messages store.MessageRepo
}

func (s MessageSink) Broadcast(ctx context.Context, username, narrative string) error {
	return s.Messages.AppendMessage(ctx, store.Message{
		Kind:     store.MessageSystem,
		Username: username,
		Text:     narrative,
	})
}
