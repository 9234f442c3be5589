// Code generated by ent, DO NOT EDIT.

package battleanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/dojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldLanguage, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldRound, v))
}

// CorrectComplexity applies equality check predicate on the "correct_complexity" field. It's identical to CorrectComplexityEQ.
func CorrectComplexity(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldCorrectComplexity, v))
}

// SelectedComplexity applies equality check predicate on the "selected_complexity" field. It's identical to SelectedComplexityEQ.
func SelectedComplexity(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldSelectedComplexity, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// TimedOut applies equality check predicate on the "timed_out" field. It's identical to TimedOutEQ.
func TimedOut(v bool) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldTimedOut, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContainsFold(FieldLanguage, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldRound, v))
}

// CorrectComplexityEQ applies the EQ predicate on the "correct_complexity" field.
func CorrectComplexityEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldCorrectComplexity, v))
}

// CorrectComplexityNEQ applies the NEQ predicate on the "correct_complexity" field.
func CorrectComplexityNEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldCorrectComplexity, v))
}

// CorrectComplexityIn applies the In predicate on the "correct_complexity" field.
func CorrectComplexityIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldCorrectComplexity, vs...))
}

// CorrectComplexityNotIn applies the NotIn predicate on the "correct_complexity" field.
func CorrectComplexityNotIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldCorrectComplexity, vs...))
}

// CorrectComplexityGT applies the GT predicate on the "correct_complexity" field.
func CorrectComplexityGT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldCorrectComplexity, v))
}

// CorrectComplexityGTE applies the GTE predicate on the "correct_complexity" field.
func CorrectComplexityGTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldCorrectComplexity, v))
}

// CorrectComplexityLT applies the LT predicate on the "correct_complexity" field.
func CorrectComplexityLT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldCorrectComplexity, v))
}

// CorrectComplexityLTE applies the LTE predicate on the "correct_complexity" field.
func CorrectComplexityLTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldCorrectComplexity, v))
}

// CorrectComplexityContains applies the Contains predicate on the "correct_complexity" field.
func CorrectComplexityContains(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContains(FieldCorrectComplexity, v))
}

// CorrectComplexityHasPrefix applies the HasPrefix predicate on the "correct_complexity" field.
func CorrectComplexityHasPrefix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasPrefix(FieldCorrectComplexity, v))
}

// CorrectComplexityHasSuffix applies the HasSuffix predicate on the "correct_complexity" field.
func CorrectComplexityHasSuffix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasSuffix(FieldCorrectComplexity, v))
}

// CorrectComplexityEqualFold applies the EqualFold predicate on the "correct_complexity" field.
func CorrectComplexityEqualFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEqualFold(FieldCorrectComplexity, v))
}

// CorrectComplexityContainsFold applies the ContainsFold predicate on the "correct_complexity" field.
func CorrectComplexityContainsFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContainsFold(FieldCorrectComplexity, v))
}

// SelectedComplexityEQ applies the EQ predicate on the "selected_complexity" field.
func SelectedComplexityEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldSelectedComplexity, v))
}

// SelectedComplexityNEQ applies the NEQ predicate on the "selected_complexity" field.
func SelectedComplexityNEQ(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldSelectedComplexity, v))
}

// SelectedComplexityIn applies the In predicate on the "selected_complexity" field.
func SelectedComplexityIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldSelectedComplexity, vs...))
}

// SelectedComplexityNotIn applies the NotIn predicate on the "selected_complexity" field.
func SelectedComplexityNotIn(vs ...string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldSelectedComplexity, vs...))
}

// SelectedComplexityGT applies the GT predicate on the "selected_complexity" field.
func SelectedComplexityGT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldSelectedComplexity, v))
}

// SelectedComplexityGTE applies the GTE predicate on the "selected_complexity" field.
func SelectedComplexityGTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldSelectedComplexity, v))
}

// SelectedComplexityLT applies the LT predicate on the "selected_complexity" field.
func SelectedComplexityLT(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldSelectedComplexity, v))
}

// SelectedComplexityLTE applies the LTE predicate on the "selected_complexity" field.
func SelectedComplexityLTE(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldSelectedComplexity, v))
}

// SelectedComplexityContains applies the Contains predicate on the "selected_complexity" field.
func SelectedComplexityContains(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContains(FieldSelectedComplexity, v))
}

// SelectedComplexityHasPrefix applies the HasPrefix predicate on the "selected_complexity" field.
func SelectedComplexityHasPrefix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasPrefix(FieldSelectedComplexity, v))
}

// SelectedComplexityHasSuffix applies the HasSuffix predicate on the "selected_complexity" field.
func SelectedComplexityHasSuffix(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldHasSuffix(FieldSelectedComplexity, v))
}

// SelectedComplexityEqualFold applies the EqualFold predicate on the "selected_complexity" field.
func SelectedComplexityEqualFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEqualFold(FieldSelectedComplexity, v))
}

// SelectedComplexityContainsFold applies the ContainsFold predicate on the "selected_complexity" field.
func SelectedComplexityContainsFold(v string) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldContainsFold(FieldSelectedComplexity, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// TimedOutEQ applies the EQ predicate on the "timed_out" field.
func TimedOutEQ(v bool) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldTimedOut, v))
}

// TimedOutNEQ applies the NEQ predicate on the "timed_out" field.
func TimedOutNEQ(v bool) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldTimedOut, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.FieldLTE(FieldTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BattleAnswerEvent) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BattleAnswerEvent) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BattleAnswerEvent) predicate.BattleAnswerEvent {
	return predicate.BattleAnswerEvent(sql.NotPredicates(p))
}
