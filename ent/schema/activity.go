package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Activity is one entry of the analytics log.
type Activity struct {
	ent.Schema
}

func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("timestamp"),
		field.String("username"),
		field.String("action"),
		field.String("details"),
	}
}
