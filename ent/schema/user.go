package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a player or one of the synthetic battle opponents.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable(),
		field.String("username").
			Unique().
			NotEmpty(),
		field.String("avatar").
			Default(""),
		field.Int("coins").
			Default(0).
			Min(0).
			Comment("Spendable balance, never negative"),
		field.Int("total_earned").
			Default(0).
			Comment("Sum of all positive coin deltas"),
		field.Int("xp").
			Default(0).
			Min(0),
		field.Bool("is_bot").
			Default(false),
		field.Int64("created_at").
			Immutable().
			Comment("Unix milliseconds"),
	}
}
