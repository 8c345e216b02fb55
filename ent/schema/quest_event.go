package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestEvent records a finished quest and what it paid out.
type QuestEvent struct {
	ent.Schema
}

func (QuestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Int("multiplier").
			Comment("1, 2, 3 or 5 depending on the modifiers"),
		field.Bool("timed"),
		field.Bool("no_cheat_sheet"),
		field.Int("correct"),
		field.Int("total"),
		field.Int("pot").
			Comment("Pot at completion; zero after any miss"),
		field.Bool("perfect"),
		field.Int("coins_awarded"),
		field.Int("xp_awarded"),
		field.Int("duration_secs"),
	}
}

func (QuestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
