package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	UserID string    // owning player, empty for all
}

// User is a player or a synthetic opponent.
type User struct {
	ID          string
	Username    string
	Avatar      string
	Coins       int
	TotalEarned int
	XP          int
	IsBot       bool
	CreatedAt   time.Time
}

// UserRepo manages player profiles and their completed topics.
type UserRepo interface {
	// EnsureUser returns the player named username, creating it with
	// startingCoins when missing.
	EnsureUser(ctx context.Context, username string, startingCoins int) (*User, error)

	// Get returns the user with id, or ErrNotFound.
	Get(ctx context.Context, id string) (*User, error)

	// ApplyDelta adds coins and xp to a user and returns the updated row.
	// Balances never drop below zero; positive coin deltas also grow
	// TotalEarned.
	ApplyDelta(ctx context.Context, id string, coins, xp int) (*User, error)

	// MarkCompleted records topicID as completed. Repeated calls are no-ops.
	MarkCompleted(ctx context.Context, userID, topicID string) error

	// CompletedTopics returns the completed topic ids of a user.
	CompletedTopics(ctx context.Context, userID string) ([]string, error)

	// SeedBots inserts bots that do not exist yet.
	SeedBots(ctx context.Context, bots []User) error

	// Leaderboard returns users ordered by XP, highest first.
	Leaderboard(ctx context.Context, limit int) ([]User, error)
}

// QuestEventData captures a finished quest.
type QuestEventData struct {
	RunID        string
	UserID       string
	TopicID      string
	Multiplier   int
	Timed        bool
	NoCheatSheet bool
	Correct      int
	Total        int
	Pot          int
	Perfect      bool
	CoinsAwarded int
	XPAwarded    int
	DurationSecs int
}

// QuestEventRecord is a stored quest event.
type QuestEventRecord struct {
	QuestEventData
	Sequence  int64
	Timestamp time.Time
}

// BattleEventData captures a battle request at one status.
type BattleEventData struct {
	BattleID        string
	ChallengerID    string
	OpponentID      string
	OpponentName    string
	TopicID         string
	Wager           int
	Status          string
	WinnerID        string
	ChallengerScore int
	OpponentScore   int
}

// BattleEventRecord is a stored battle event.
type BattleEventRecord struct {
	BattleEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStats aggregates LLM usage for one purpose and model.
type LLMUsageStats struct {
	Purpose      string
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	AppendQuestEvent(ctx context.Context, data QuestEventData) error
	QueryQuestEvents(ctx context.Context, opts QueryOpts) ([]QuestEventRecord, error)

	// AppendBattleEvent records a battle request status change.
	AppendBattleEvent(ctx context.Context, data BattleEventData) error
	QueryBattleEvents(ctx context.Context, opts QueryOpts) ([]BattleEventRecord, error)
}

// Message kinds.
const (
	MessageSystem = "system"
	MessageChat   = "chat"
)

// MessageLimit is the number of broadcast messages kept.
const MessageLimit = 50

// Message is a broadcast entry.
type Message struct {
	ID        int
	Kind      string
	Username  string
	Text      string
	Timestamp time.Time
}

// MessageRepo stores broadcast messages, keeping the newest MessageLimit.
type MessageRepo interface {
	AppendMessage(ctx context.Context, msg Message) error
	RecentMessages(ctx context.Context, limit int) ([]Message, error)
}

// ActivityLimit is the number of activity entries kept.
const ActivityLimit = 500

// Activity is one analytics log entry.
type Activity struct {
	ID        int
	Timestamp time.Time
	Username  string
	Action    string
	Details   string
}

// ActivityRepo stores the activity log, keeping the newest ActivityLimit.
type ActivityRepo interface {
	AppendActivity(ctx context.Context, a Activity) error
	RecentActivity(ctx context.Context, limit int) ([]Activity, error)
}
