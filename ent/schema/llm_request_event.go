package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent captures one model call end to end: who was asked,
// why, what it cost, and the full prompt and reply for `dojo llm view`.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Backend: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Concrete model that served the call"),
		field.String("purpose").
			Comment("Caller label: debate-dispatch, debate-teacher, debate-critic, debate-review"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt tokens"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion tokens"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the call"),
		field.Bool("success").
			Comment("False when the call errored after retries"),
		field.String("error_message").
			Default("").
			Comment("Final error, empty on success"),
		field.Text("request_body").
			Default("").
			Comment("Flattened prompt: system, transcript, schema"),
		field.Text("response_body").
			Default("").
			Comment("Raw response content"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
