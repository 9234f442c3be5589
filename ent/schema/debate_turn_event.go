package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DebateTurnEvent records one message appended to a debate transcript.
type DebateTurnEvent struct {
	ent.Schema
}

func (DebateTurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DebateTurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups turns of one debate session"),
		field.String("role").
			NotEmpty().
			Comment("student, teacher, or critic"),
		field.String("phase").
			NotEmpty().
			Comment("Debate phase when the turn was appended"),
		field.Text("content").
			NotEmpty().
			Comment("Message text"),
	}
}

func (DebateTurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("role"),
	}
}
