// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/dojo/ent/battleanswerevent"
)

// BattleAnswerEvent is the model entity for the BattleAnswerEvent schema.
type BattleAnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was recorded, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Groups rounds of one battle
	SessionID string `json:"session_id,omitempty"`
	// Language of the code snippet
	Language string `json:"language,omitempty"`
	// 1-based round number within the battle
	Round int `json:"round,omitempty"`
	// Canonical complexity of the snippet
	CorrectComplexity string `json:"correct_complexity,omitempty"`
	// What the player picked; empty on timeout
	SelectedComplexity string `json:"selected_complexity,omitempty"`
	// Whether the pick matched after normalization
	Correct bool `json:"correct,omitempty"`
	// Round expired with no answer
	TimedOut bool `json:"timed_out,omitempty"`
	// Milliseconds to answer
	TimeMs       int `json:"time_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BattleAnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case battleanswerevent.FieldCorrect, battleanswerevent.FieldTimedOut:
			values[i] = new(sql.NullBool)
		case battleanswerevent.FieldID, battleanswerevent.FieldSequence, battleanswerevent.FieldRound, battleanswerevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case battleanswerevent.FieldSessionID, battleanswerevent.FieldLanguage, battleanswerevent.FieldCorrectComplexity, battleanswerevent.FieldSelectedComplexity:
			values[i] = new(sql.NullString)
		case battleanswerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BattleAnswerEvent fields.
func (_m *BattleAnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case battleanswerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case battleanswerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case battleanswerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case battleanswerevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case battleanswerevent.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case battleanswerevent.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case battleanswerevent.FieldCorrectComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_complexity", values[i])
			} else if value.Valid {
				_m.CorrectComplexity = value.String
			}
		case battleanswerevent.FieldSelectedComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_complexity", values[i])
			} else if value.Valid {
				_m.SelectedComplexity = value.String
			}
		case battleanswerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case battleanswerevent.FieldTimedOut:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field timed_out", values[i])
			} else if value.Valid {
				_m.TimedOut = value.Bool
			}
		case battleanswerevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BattleAnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BattleAnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BattleAnswerEvent.
// Note that you need to call BattleAnswerEvent.Unwrap() before calling this method if this BattleAnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BattleAnswerEvent) Update() *BattleAnswerEventUpdateOne {
	return NewBattleAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BattleAnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BattleAnswerEvent) Unwrap() *BattleAnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BattleAnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BattleAnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BattleAnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("correct_complexity=")
	builder.WriteString(_m.CorrectComplexity)
	builder.WriteString(", ")
	builder.WriteString("selected_complexity=")
	builder.WriteString(_m.SelectedComplexity)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("timed_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimedOut))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteByte(')')
	return builder.String()
}

// BattleAnswerEvents is a parsable slice of BattleAnswerEvent.
type BattleAnswerEvents []*BattleAnswerEvent
