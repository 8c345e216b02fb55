package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	usersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "avatar", Type: field.TypeString, Default: ""},
		{Name: "coins", Type: field.TypeInt, Default: 0},
		{Name: "total_earned", Type: field.TypeInt, Default: 0},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "is_bot", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeInt64},
	}
	usersTable = &schema.Table{
		Name:       "users",
		Columns:    usersColumns,
		PrimaryKey: []*schema.Column{usersColumns[0]},
	}

	completedColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeInt64},
	}
	completedTable = &schema.Table{
		Name:       "completed_topics",
		Columns:    completedColumns,
		PrimaryKey: []*schema.Column{completedColumns[0]},
		Indexes: []*schema.Index{
			{Name: "completed_user_topic", Unique: true, Columns: []*schema.Column{completedColumns[1], completedColumns[2]}},
		},
	}

	questEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "run_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "multiplier", Type: field.TypeInt},
		{Name: "timed", Type: field.TypeBool},
		{Name: "no_cheat_sheet", Type: field.TypeBool},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "pot", Type: field.TypeInt},
		{Name: "perfect", Type: field.TypeBool},
		{Name: "coins_awarded", Type: field.TypeInt},
		{Name: "xp_awarded", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt},
	}
	questEventsTable = &schema.Table{
		Name:       "quest_events",
		Columns:    questEventsColumns,
		PrimaryKey: []*schema.Column{questEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "questevent_user_id", Columns: []*schema.Column{questEventsColumns[4]}},
		},
	}

	battleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "battle_id", Type: field.TypeString},
		{Name: "challenger_id", Type: field.TypeString},
		{Name: "opponent_id", Type: field.TypeString},
		{Name: "opponent_name", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "wager", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "winner_id", Type: field.TypeString, Default: ""},
		{Name: "challenger_score", Type: field.TypeInt, Default: 0},
		{Name: "opponent_score", Type: field.TypeInt, Default: 0},
	}
	battleEventsTable = &schema.Table{
		Name:       "battle_events",
		Columns:    battleEventsColumns,
		PrimaryKey: []*schema.Column{battleEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "battleevent_battle_id", Columns: []*schema.Column{battleEventsColumns[3]}},
		},
	}

	llmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	llmEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
	}

	messagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeInt64},
	}
	messagesTable = &schema.Table{
		Name:       "messages",
		Columns:    messagesColumns,
		PrimaryKey: []*schema.Column{messagesColumns[0]},
	}

	activityColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "username", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "details", Type: field.TypeString},
	}
	activityTable = &schema.Table{
		Name:       "activity_log",
		Columns:    activityColumns,
		PrimaryKey: []*schema.Column{activityColumns[0]},
	}

	tables = []*schema.Table{
		usersTable,
		completedTable,
		questEventsTable,
		battleEventsTable,
		llmEventsTable,
		messagesTable,
		activityTable,
	}
)

// migrate creates missing tables and columns.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
