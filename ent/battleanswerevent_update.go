// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/dojo/ent/battleanswerevent"
	"github.com/abhisek/dojo/ent/predicate"
)

// BattleAnswerEventUpdate is the builder for updating BattleAnswerEvent entities.
type BattleAnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *BattleAnswerEventMutation
}

// Where appends a list predicates to the BattleAnswerEventUpdate builder.
func (_u *BattleAnswerEventUpdate) Where(ps ...predicate.BattleAnswerEvent) *BattleAnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BattleAnswerEventUpdate) SetSessionID(v string) *BattleAnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableSessionID(v *string) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *BattleAnswerEventUpdate) SetLanguage(v string) *BattleAnswerEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableLanguage(v *string) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *BattleAnswerEventUpdate) SetRound(v int) *BattleAnswerEventUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableRound(v *int) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *BattleAnswerEventUpdate) AddRound(v int) *BattleAnswerEventUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetCorrectComplexity sets the "correct_complexity" field.
func (_u *BattleAnswerEventUpdate) SetCorrectComplexity(v string) *BattleAnswerEventUpdate {
	_u.mutation.SetCorrectComplexity(v)
	return _u
}

// SetNillableCorrectComplexity sets the "correct_complexity" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableCorrectComplexity(v *string) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetCorrectComplexity(*v)
	}
	return _u
}

// SetSelectedComplexity sets the "selected_complexity" field.
func (_u *BattleAnswerEventUpdate) SetSelectedComplexity(v string) *BattleAnswerEventUpdate {
	_u.mutation.SetSelectedComplexity(v)
	return _u
}

// SetNillableSelectedComplexity sets the "selected_complexity" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableSelectedComplexity(v *string) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetSelectedComplexity(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *BattleAnswerEventUpdate) SetCorrect(v bool) *BattleAnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableCorrect(v *bool) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *BattleAnswerEventUpdate) SetTimedOut(v bool) *BattleAnswerEventUpdate {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableTimedOut(v *bool) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *BattleAnswerEventUpdate) SetTimeMs(v int) *BattleAnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *BattleAnswerEventUpdate) SetNillableTimeMs(v *int) *BattleAnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *BattleAnswerEventUpdate) AddTimeMs(v int) *BattleAnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the BattleAnswerEventMutation object of the builder.
func (_u *BattleAnswerEventUpdate) Mutation() *BattleAnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BattleAnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BattleAnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BattleAnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BattleAnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BattleAnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := battleanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := battleanswerevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectComplexity(); ok {
		if err := battleanswerevent.CorrectComplexityValidator(v); err != nil {
			return &ValidationError{Name: "correct_complexity", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.correct_complexity": %w`, err)}
		}
	}
	return nil
}

func (_u *BattleAnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(battleanswerevent.Table, battleanswerevent.Columns, sqlgraph.NewFieldSpec(battleanswerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(battleanswerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(battleanswerevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(battleanswerevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(battleanswerevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectComplexity(); ok {
		_spec.SetField(battleanswerevent.FieldCorrectComplexity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedComplexity(); ok {
		_spec.SetField(battleanswerevent.FieldSelectedComplexity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(battleanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(battleanswerevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(battleanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(battleanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{battleanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BattleAnswerEventUpdateOne is the builder for updating a single BattleAnswerEvent entity.
type BattleAnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BattleAnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *BattleAnswerEventUpdateOne) SetSessionID(v string) *BattleAnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableSessionID(v *string) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *BattleAnswerEventUpdateOne) SetLanguage(v string) *BattleAnswerEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableLanguage(v *string) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *BattleAnswerEventUpdateOne) SetRound(v int) *BattleAnswerEventUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableRound(v *int) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *BattleAnswerEventUpdateOne) AddRound(v int) *BattleAnswerEventUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetCorrectComplexity sets the "correct_complexity" field.
func (_u *BattleAnswerEventUpdateOne) SetCorrectComplexity(v string) *BattleAnswerEventUpdateOne {
	_u.mutation.SetCorrectComplexity(v)
	return _u
}

// SetNillableCorrectComplexity sets the "correct_complexity" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableCorrectComplexity(v *string) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectComplexity(*v)
	}
	return _u
}

// SetSelectedComplexity sets the "selected_complexity" field.
func (_u *BattleAnswerEventUpdateOne) SetSelectedComplexity(v string) *BattleAnswerEventUpdateOne {
	_u.mutation.SetSelectedComplexity(v)
	return _u
}

// SetNillableSelectedComplexity sets the "selected_complexity" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableSelectedComplexity(v *string) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetSelectedComplexity(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *BattleAnswerEventUpdateOne) SetCorrect(v bool) *BattleAnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableCorrect(v *bool) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *BattleAnswerEventUpdateOne) SetTimedOut(v bool) *BattleAnswerEventUpdateOne {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableTimedOut(v *bool) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *BattleAnswerEventUpdateOne) SetTimeMs(v int) *BattleAnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *BattleAnswerEventUpdateOne) SetNillableTimeMs(v *int) *BattleAnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *BattleAnswerEventUpdateOne) AddTimeMs(v int) *BattleAnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the BattleAnswerEventMutation object of the builder.
func (_u *BattleAnswerEventUpdateOne) Mutation() *BattleAnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BattleAnswerEventUpdate builder.
func (_u *BattleAnswerEventUpdateOne) Where(ps ...predicate.BattleAnswerEvent) *BattleAnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BattleAnswerEventUpdateOne) Select(field string, fields ...string) *BattleAnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BattleAnswerEvent entity.
func (_u *BattleAnswerEventUpdateOne) Save(ctx context.Context) (*BattleAnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BattleAnswerEventUpdateOne) SaveX(ctx context.Context) *BattleAnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BattleAnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BattleAnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BattleAnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := battleanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := battleanswerevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectComplexity(); ok {
		if err := battleanswerevent.CorrectComplexityValidator(v); err != nil {
			return &ValidationError{Name: "correct_complexity", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.correct_complexity": %w`, err)}
		}
	}
	return nil
}

func (_u *BattleAnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *BattleAnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(battleanswerevent.Table, battleanswerevent.Columns, sqlgraph.NewFieldSpec(battleanswerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BattleAnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, battleanswerevent.FieldID)
		for _, f := range fields {
			if !battleanswerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != battleanswerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(battleanswerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(battleanswerevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(battleanswerevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(battleanswerevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectComplexity(); ok {
		_spec.SetField(battleanswerevent.FieldCorrectComplexity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedComplexity(); ok {
		_spec.SetField(battleanswerevent.FieldSelectedComplexity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(battleanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(battleanswerevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(battleanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(battleanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &BattleAnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{battleanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
