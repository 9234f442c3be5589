// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BattleAnswerEvent is the predicate function for battleanswerevent builders.
type BattleAnswerEvent func(*sql.Selector)

// DebateTurnEvent is the predicate function for debateturnevent builders.
type DebateTurnEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
