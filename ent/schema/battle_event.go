package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BattleEvent records a battle request each time its status changes.
type BattleEvent struct {
	ent.Schema
}

func (BattleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BattleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("battle_id").
			NotEmpty(),
		field.String("challenger_id").
			NotEmpty(),
		field.String("opponent_id").
			NotEmpty(),
		field.String("opponent_name"),
		field.String("topic_id"),
		field.Int("wager"),
		field.String("status").
			Comment("pending, active or completed"),
		field.String("winner_id").
			Default(""),
		field.Int("challenger_score").
			Default(0),
		field.Int("opponent_score").
			Default(0),
	}
}

func (BattleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battle_id"),
	}
}
