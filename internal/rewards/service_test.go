package rewards

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/store"
)

type mockPersist struct {
	mu      sync.Mutex
	deltas  []Delta
	balance Balance
	err     error
}

func (m *mockPersist) SubmitResult(_ context.Context, _ string, d Delta) (Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Balance{}, m.err
	}
	m.deltas = append(m.deltas, d)
	m.balance.Coins += d.Coins
	m.balance.XP += d.XP
	return m.balance, nil
}

type mockBroadcast struct {
	mu         sync.Mutex
	narratives []string
	err        error
}

func (m *mockBroadcast) Broadcast(_ context.Context, username, narrative string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.narratives = append(m.narratives, username+" "+narrative)
	return m.err
}

// mockEventRepo implements store.EventRepo for rewards tests.
type mockEventRepo struct {
	mu      sync.Mutex
	quests  []store.QuestEventData
	battles []store.BattleEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendQuestEvent(_ context.Context, data store.QuestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quests = append(m.quests, data)
	return nil
}
func (m *mockEventRepo) QueryQuestEvents(_ context.Context, _ store.QueryOpts) ([]store.QuestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendBattleEvent(_ context.Context, data store.BattleEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.battles = append(m.battles, data)
	return nil
}
func (m *mockEventRepo) QueryBattleEvents(_ context.Context, _ store.QueryOpts) ([]store.BattleEventRecord, error) {
	return nil, nil
}

type mockActivityRepo struct {
	mu      sync.Mutex
	entries []store.Activity
}

func (m *mockActivityRepo) AppendActivity(_ context.Context, a store.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, a)
	return nil
}
func (m *mockActivityRepo) RecentActivity(_ context.Context, _ int) ([]store.Activity, error) {
	return nil, nil
}

func (m *mockActivityRepo) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.entries {
		out = append(out, e.Action)
	}
	return out
}

type fixture struct {
	svc       *Service
	persist   *mockPersist
	broadcast *mockBroadcast
	events    *mockEventRepo
	activity  *mockActivityRepo
}

func newFixture() *fixture {
	f := &fixture{
		persist:   &mockPersist{balance: Balance{Coins: 250}},
		broadcast: &mockBroadcast{},
		events:    &mockEventRepo{},
		activity:  &mockActivityRepo{},
	}
	f.svc = NewService(f.persist, f.broadcast, WithEvents(f.events), WithActivity(f.activity))
	return f
}

var ada = Player{ID: "u-1", Username: "ada"}

func TestQuestCompleted(t *testing.T) {
	f := newFixture()
	out := quest.Outcome{
		RunID:      "run-1",
		TopicID:    "u3",
		Config:     quest.Config{Timed: true, NoCheatSheet: true},
		Multiplier: 5,
		Pot:        250,
		Perfect:    true,
		Correct:    5,
		Total:      5,
	}

	d := f.svc.QuestCompleted(context.Background(), ada, "Areas & Terms", out, run.Summary{Duration: 90 * time.Second})
	f.svc.Wait()

	if d.Coins != 250 || d.XP != PerfectQuestXP {
		t.Fatalf("delta = %+v", d)
	}
	if len(f.persist.deltas) != 1 || f.persist.deltas[0].CompletedTopic != "u3" {
		t.Fatalf("persisted = %+v", f.persist.deltas)
	}
	if len(f.events.quests) != 1 {
		t.Fatalf("expected 1 quest event, got %d", len(f.events.quests))
	}
	ev := f.events.quests[0]
	if ev.UserID != "u-1" || ev.CoinsAwarded != 250 || ev.DurationSecs != 90 || !ev.Timed {
		t.Errorf("quest event = %+v", ev)
	}

	actions := f.activity.actions()
	want := []string{ActionCoinTransaction, ActionQuestComplete}
	if strings.Join(actions, ",") != strings.Join(want, ",") {
		t.Errorf("actions = %v, want %v", actions, want)
	}
	if len(f.broadcast.narratives) != 1 || !strings.Contains(f.broadcast.narratives[0], `"Areas & Terms"`) {
		t.Errorf("narratives = %v", f.broadcast.narratives)
	}
}

func TestQuestCompleted_NoCoinsNoTransaction(t *testing.T) {
	f := newFixture()
	f.svc.QuestCompleted(context.Background(), ada, "Similarity", quest.Outcome{TopicID: "u5", Pot: 0}, run.Summary{})
	f.svc.Wait()

	for _, a := range f.activity.actions() {
		if a == ActionCoinTransaction {
			t.Fatal("no coin transaction expected for a zero coin delta")
		}
	}
}

func TestBattleLifecycle(t *testing.T) {
	f := newFixture()
	req := &battle.Request{
		ID:           "b-1",
		ChallengerID: "u-1",
		OpponentID:   "bot2",
		OpponentName: "Sarah.Math",
		TopicID:      "u4",
		TopicTitle:   "Solids & Surfaces",
		Wager:        battle.Wager,
		Status:       battle.StatusActive,
	}
	f.svc.BattleStarted(context.Background(), ada, req)
	f.svc.Wait()

	st := battle.Settlement{Win: false, PlayerScore: 2, OpponentScore: 4, CoinsDelta: -100}
	if err := req.Complete(st); err != nil {
		t.Fatalf("complete: %v", err)
	}
	d := f.svc.BattleSettled(context.Background(), ada, req, st)
	f.svc.Wait()

	if d.Coins != -100 || d.XP != 0 {
		t.Fatalf("delta = %+v", d)
	}
	if f.persist.balance.Coins != 150 {
		t.Errorf("balance = %d, want 150", f.persist.balance.Coins)
	}
	if len(f.events.battles) != 2 {
		t.Fatalf("expected 2 battle events, got %d", len(f.events.battles))
	}
	if f.events.battles[0].Status != "active" || f.events.battles[1].Status != "completed" {
		t.Errorf("statuses = %s, %s", f.events.battles[0].Status, f.events.battles[1].Status)
	}
	if f.events.battles[1].WinnerID != "bot2" {
		t.Errorf("winner = %q", f.events.battles[1].WinnerID)
	}

	want := []string{ActionBattleStart, ActionCoinTransaction, ActionBattleLoss}
	if got := f.activity.actions(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("actions = %v, want %v", got, want)
	}
	if len(f.broadcast.narratives) != 1 || !strings.Contains(f.broadcast.narratives[0], "was beaten by Sarah.Math") {
		t.Errorf("narratives = %v", f.broadcast.narratives)
	}
}

func TestDispatchFailuresDoNotPropagate(t *testing.T) {
	f := newFixture()
	f.persist.err = errors.New("db down")
	f.broadcast.err = errors.New("offline")

	var applied bool
	f.svc.onApplied = func(Balance) { applied = true }

	d := f.svc.QuestCompleted(context.Background(), ada, "Similarity",
		quest.Outcome{TopicID: "u5", Pot: 100, Perfect: true}, run.Summary{})
	f.svc.Wait()

	if d.Coins != 100 {
		t.Fatalf("delta still computed, got %+v", d)
	}
	if applied {
		t.Error("onApplied must not run when persistence fails")
	}
	if len(f.events.quests) != 1 {
		t.Error("later dispatch steps still run after a failure")
	}
}

func TestDispatchSurvivesCancelledContext(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.svc.QuestCompleted(ctx, ada, "Similarity", quest.Outcome{TopicID: "u5"}, run.Summary{})
	f.svc.Wait()

	if len(f.persist.deltas) != 1 {
		t.Fatal("settlement must be dispatched even after the caller's context ends")
	}
}

func TestNilSinks(t *testing.T) {
	svc := NewService(nil, nil)
	d := svc.QuestCompleted(context.Background(), ada, "Similarity", quest.Outcome{TopicID: "u5", Perfect: true, Pot: 50}, run.Summary{})
	svc.Wait()
	if d.Coins != 50 {
		t.Fatalf("delta = %+v", d)
	}
}

func TestHintRequested(t *testing.T) {
	f := newFixture()
	f.svc.HintRequested(context.Background(), ada, "u2", "reference")
	f.svc.Wait()

	if got := f.activity.actions(); len(got) != 1 || got[0] != ActionHintRequest {
		t.Fatalf("actions = %v", got)
	}
	if len(f.persist.deltas) != 0 {
		t.Fatal("a hint must not touch the balance")
	}
}
