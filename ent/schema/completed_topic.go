package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletedTopic marks a topic a player has finished at least once.
type CompletedTopic struct {
	ent.Schema
}

func (CompletedTopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Int64("completed_at"),
	}
}

func (CompletedTopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
	}
}
