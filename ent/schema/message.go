package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Message is a broadcast line shown in the leaderboard feed.
type Message struct {
	ent.Schema
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			Comment("system or chat"),
		field.String("username"),
		field.String("text"),
		field.Int64("timestamp"),
	}
}
