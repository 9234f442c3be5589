package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BattleAnswerEvent records a single answered round in a Big O battle.
type BattleAnswerEvent struct {
	ent.Schema
}

func (BattleAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BattleAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups rounds of one battle"),
		field.String("language").
			NotEmpty().
			Comment("Language of the code snippet"),
		field.Int("round").
			Comment("1-based round number within the battle"),
		field.String("correct_complexity").
			NotEmpty().
			Comment("Canonical complexity of the snippet"),
		field.String("selected_complexity").
			Default("").
			Comment("What the player picked; empty on timeout"),
		field.Bool("correct").
			Comment("Whether the pick matched after normalization"),
		field.Bool("timed_out").
			Default(false).
			Comment("Round expired with no answer"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (BattleAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("language"),
		index.Fields("correct"),
	}
}
