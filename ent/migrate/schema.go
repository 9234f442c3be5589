// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BattleAnswerEventsColumns holds the columns for the "battle_answer_events" table.
	BattleAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "round", Type: field.TypeInt},
		{Name: "correct_complexity", Type: field.TypeString},
		{Name: "selected_complexity", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "timed_out", Type: field.TypeBool, Default: false},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// BattleAnswerEventsTable holds the schema information for the "battle_answer_events" table.
	BattleAnswerEventsTable = &schema.Table{
		Name:       "battle_answer_events",
		Columns:    BattleAnswerEventsColumns,
		PrimaryKey: []*schema.Column{BattleAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "battleanswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BattleAnswerEventsColumns[1]},
			},
			{
				Name:    "battleanswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BattleAnswerEventsColumns[2]},
			},
			{
				Name:    "battleanswerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{BattleAnswerEventsColumns[3]},
			},
			{
				Name:    "battleanswerevent_language",
				Unique:  false,
				Columns: []*schema.Column{BattleAnswerEventsColumns[4]},
			},
			{
				Name:    "battleanswerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{BattleAnswerEventsColumns[8]},
			},
		},
	}
	// DebateTurnEventsColumns holds the columns for the "debate_turn_events" table.
	DebateTurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// DebateTurnEventsTable holds the schema information for the "debate_turn_events" table.
	DebateTurnEventsTable = &schema.Table{
		Name:       "debate_turn_events",
		Columns:    DebateTurnEventsColumns,
		PrimaryKey: []*schema.Column{DebateTurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "debateturnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DebateTurnEventsColumns[1]},
			},
			{
				Name:    "debateturnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DebateTurnEventsColumns[2]},
			},
			{
				Name:    "debateturnevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{DebateTurnEventsColumns[3]},
			},
			{
				Name:    "debateturnevent_role",
				Unique:  false,
				Columns: []*schema.Column{DebateTurnEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "rounds_played", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_mode",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BattleAnswerEventsTable,
		DebateTurnEventsTable,
		LlmRequestEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
