package rewards

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/store"
)

// Activity actions.
const (
	ActionQuestComplete   = "QUEST_COMPLETE"
	ActionBattleStart     = "BATTLE_START"
	ActionBattleWin       = "BATTLE_WIN"
	ActionBattleLoss      = "BATTLE_LOSS"
	ActionCoinTransaction = "COIN_TRANSACTION"
	ActionHintRequest     = "HINT_REQUEST"
)

// Player identifies who a result belongs to.
type Player struct {
	ID       string
	Username string
}

// Service computes deltas synchronously and dispatches their side effects
// in the background. Dispatch failures are logged and never reach the
// caller.
type Service struct {
	persist   PersistenceSink
	broadcast BroadcastSink
	events    store.EventRepo
	activity  store.ActivityRepo
	log       zerolog.Logger
	onApplied func(Balance)

	wg sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithEvents records quest and battle events.
func WithEvents(repo store.EventRepo) Option {
	return func(s *Service) { s.events = repo }
}

// WithActivity records the activity log.
func WithActivity(repo store.ActivityRepo) Option {
	return func(s *Service) { s.activity = repo }
}

// WithLogger sets the logger. Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithOnApplied registers a callback receiving the balance after each
// persisted delta. It runs on the dispatch goroutine.
func WithOnApplied(f func(Balance)) Option {
	return func(s *Service) { s.onApplied = f }
}

// NewService creates a Service. Nil sinks are skipped.
func NewService(persist PersistenceSink, broadcast BroadcastSink, opts ...Option) *Service {
	s := &Service{
		persist:   persist,
		broadcast: broadcast,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QuestCompleted settles a completed quest and returns the delta.
func (s *Service) QuestCompleted(ctx context.Context, p Player, topicTitle string, out quest.Outcome, sum run.Summary) Delta {
	d := ForQuest(out)

	s.log.Info().
		Str("action", ActionQuestComplete).
		Str("user", p.Username).
		Str("topic", out.TopicID).
		Int("pot", out.Pot).
		Bool("perfect", out.Perfect).
		Int("coins", d.Coins).
		Int("xp", d.XP).
		Msg("quest completed")

	s.dispatch(ctx, func(ctx context.Context) {
		s.apply(ctx, p, d)
		s.appendEvent(ctx, "quest event", func(ctx context.Context) error {
			return s.events.AppendQuestEvent(ctx, store.QuestEventData{
				RunID:        out.RunID,
				UserID:       p.ID,
				TopicID:      out.TopicID,
				Multiplier:   out.Multiplier,
				Timed:        out.Config.Timed,
				NoCheatSheet: out.Config.NoCheatSheet,
				Correct:      out.Correct,
				Total:        out.Total,
				Pot:          out.Pot,
				Perfect:      out.Perfect,
				CoinsAwarded: d.Coins,
				XPAwarded:    d.XP,
				DurationSecs: int(sum.Duration.Seconds()),
			})
		})
		s.record(ctx, p, ActionQuestComplete, fmt.Sprintf(
			"Topic %s completed. %d coins earned. Perfect: %t", out.TopicID, d.Coins, out.Perfect))
		s.publish(ctx, p, QuestNarrative(topicTitle))
	})
	return d
}

// BattleStarted records a challenge that is about to be played.
func (s *Service) BattleStarted(ctx context.Context, p Player, req *battle.Request) {
	s.log.Info().
		Str("action", ActionBattleStart).
		Str("user", p.Username).
		Str("battle", req.ID).
		Str("opponent", req.OpponentName).
		Int("wager", req.Wager).
		Msg("battle started")

	snapshot := *req
	s.dispatch(ctx, func(ctx context.Context) {
		s.appendEvent(ctx, "battle event", func(ctx context.Context) error {
			return s.events.AppendBattleEvent(ctx, battleEvent(&snapshot))
		})
		s.record(ctx, p, ActionBattleStart, fmt.Sprintf(
			"Challenged %s for %d coins. Topic: %s", snapshot.OpponentName, snapshot.Wager, snapshot.TopicTitle))
	})
}

// BattleSettled applies a settlement and returns the delta. req must
// already be completed.
func (s *Service) BattleSettled(ctx context.Context, p Player, req *battle.Request, st battle.Settlement) Delta {
	d := ForBattle(st)

	action := ActionBattleLoss
	details := fmt.Sprintf("Lost against %s. Score: %d/%d. -%d coins",
		req.OpponentName, st.PlayerScore, st.OpponentScore, req.Wager)
	if st.Win {
		action = ActionBattleWin
		details = fmt.Sprintf("Won against %s. Score: %d/%d. +%d coins, +%d XP",
			req.OpponentName, st.PlayerScore, st.OpponentScore, req.Wager, st.XPDelta)
	}

	s.log.Info().
		Str("action", action).
		Str("user", p.Username).
		Str("battle", req.ID).
		Int("score", st.PlayerScore).
		Int("opponent_score", st.OpponentScore).
		Msg("battle settled")

	snapshot := *req
	s.dispatch(ctx, func(ctx context.Context) {
		s.apply(ctx, p, d)
		s.appendEvent(ctx, "battle event", func(ctx context.Context) error {
			return s.events.AppendBattleEvent(ctx, battleEvent(&snapshot))
		})
		s.record(ctx, p, action, details)
		s.publish(ctx, p, BattleNarrative(st.Win, snapshot.OpponentName))
	})
	return d
}

// HintRequested records that p used the hint of a task. source is where
// the hint came from ("llm" or "reference").
func (s *Service) HintRequested(ctx context.Context, p Player, topicID, source string) {
	s.log.Info().
		Str("action", ActionHintRequest).
		Str("user", p.Username).
		Str("topic", topicID).
		Str("source", source).
		Msg("hint requested")

	s.dispatch(ctx, func(ctx context.Context) {
		s.record(ctx, p, ActionHintRequest, fmt.Sprintf("Hint for topic %s (%s)", topicID, source))
	})
}

// Wait blocks until every dispatched settlement has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) dispatch(ctx context.Context, f func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		f(ctx)
	}()
}

func (s *Service) apply(ctx context.Context, p Player, d Delta) {
	if s.persist == nil {
		return
	}
	bal, err := s.persist.SubmitResult(ctx, p.ID, d)
	if err != nil {
		s.log.Warn().Err(err).Str("user", p.Username).Msg("persist result failed")
		return
	}
	if d.Coins != 0 {
		s.log.Info().
			Str("action", ActionCoinTransaction).
			Str("user", p.Username).
			Int("amount", d.Coins).
			Int("balance", bal.Coins).
			Msg("coins changed")
		s.record(ctx, p, ActionCoinTransaction, fmt.Sprintf("%+d coins. New balance: %d coins", d.Coins, bal.Coins))
	}
	if s.onApplied != nil {
		s.onApplied(bal)
	}
}

func (s *Service) appendEvent(ctx context.Context, what string, f func(ctx context.Context) error) {
	if s.events == nil {
		return
	}
	if err := f(ctx); err != nil {
		s.log.Warn().Err(err).Msgf("append %s failed", what)
	}
}

func (s *Service) record(ctx context.Context, p Player, action, details string) {
	if s.activity == nil {
		return
	}
	err := s.activity.AppendActivity(ctx, store.Activity{
		Username: p.Username,
		Action:   action,
		Details:  details,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("append activity failed")
	}
}

func (s *Service) publish(ctx context.Context, p Player, narrative string) {
	if s.broadcast == nil {
		return
	}
	if err := s.broadcast.Broadcast(ctx, p.Username, narrative); err != nil {
		s.log.Warn().Err(err).Str("user", p.Username).Msg("broadcast failed")
	}
}

func battleEvent(req *battle.Request) store.BattleEventData {
	data := store.BattleEventData{
		BattleID:     req.ID,
		ChallengerID: req.ChallengerID,
		OpponentID:   req.OpponentID,
		OpponentName: req.OpponentName,
		TopicID:      req.TopicID,
		Wager:        req.Wager,
		Status:       string(req.Status),
	}
	if req.Result != nil {
		data.WinnerID = req.Result.WinnerID
		data.ChallengerScore = req.Result.ChallengerScore
		data.OpponentScore = req.Result.OpponentScore
	}
	return data
}
