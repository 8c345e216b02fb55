// Package schema declares the geoquest entities. internal/store migrates
// tables that mirror these declarations.
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin gives quest, battle and LLM events a shared global order.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Positive().
			Comment("Allocated by the store sequence counter, starting at 1"),
		field.Int64("timestamp").
			Immutable().
			Comment("Unix milliseconds, UTC"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
