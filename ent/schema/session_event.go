package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent marks the start and end of a battle or debate. The end
// event carries the session's summary numbers; the start event only
// opens the bracket.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID shared by every event in the session"),
		field.String("mode").
			NotEmpty().
			Comment("battle or debate"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("rounds_played").
			Default(0).
			Comment("Rounds answered or timed out (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct rounds (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
		index.Fields("action"),
	}
}
