// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/dojo/ent/battleanswerevent"
)

// BattleAnswerEventCreate is the builder for creating a BattleAnswerEvent entity.
type BattleAnswerEventCreate struct {
	config
	mutation *BattleAnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BattleAnswerEventCreate) SetSequence(v int64) *BattleAnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BattleAnswerEventCreate) SetTimestamp(v time.Time) *BattleAnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BattleAnswerEventCreate) SetNillableTimestamp(v *time.Time) *BattleAnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *BattleAnswerEventCreate) SetSessionID(v string) *BattleAnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *BattleAnswerEventCreate) SetLanguage(v string) *BattleAnswerEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *BattleAnswerEventCreate) SetRound(v int) *BattleAnswerEventCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetCorrectComplexity sets the "correct_complexity" field.
func (_c *BattleAnswerEventCreate) SetCorrectComplexity(v string) *BattleAnswerEventCreate {
	_c.mutation.SetCorrectComplexity(v)
	return _c
}

// SetSelectedComplexity sets the "selected_complexity" field.
func (_c *BattleAnswerEventCreate) SetSelectedComplexity(v string) *BattleAnswerEventCreate {
	_c.mutation.SetSelectedComplexity(v)
	return _c
}

// SetNillableSelectedComplexity sets the "selected_complexity" field if the given value is not nil.
func (_c *BattleAnswerEventCreate) SetNillableSelectedComplexity(v *string) *BattleAnswerEventCreate {
	if v != nil {
		_c.SetSelectedComplexity(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *BattleAnswerEventCreate) SetCorrect(v bool) *BattleAnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimedOut sets the "timed_out" field.
func (_c *BattleAnswerEventCreate) SetTimedOut(v bool) *BattleAnswerEventCreate {
	_c.mutation.SetTimedOut(v)
	return _c
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_c *BattleAnswerEventCreate) SetNillableTimedOut(v *bool) *BattleAnswerEventCreate {
	if v != nil {
		_c.SetTimedOut(*v)
	}
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *BattleAnswerEventCreate) SetTimeMs(v int) *BattleAnswerEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_c *BattleAnswerEventCreate) SetNillableTimeMs(v *int) *BattleAnswerEventCreate {
	if v != nil {
		_c.SetTimeMs(*v)
	}
	return _c
}

// Mutation returns the BattleAnswerEventMutation object of the builder.
func (_c *BattleAnswerEventCreate) Mutation() *BattleAnswerEventMutation {
	return _c.mutation
}

// Save creates the BattleAnswerEvent in the database.
func (_c *BattleAnswerEventCreate) Save(ctx context.Context) (*BattleAnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BattleAnswerEventCreate) SaveX(ctx context.Context) *BattleAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BattleAnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BattleAnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BattleAnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := battleanswerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SelectedComplexity(); !ok {
		v := battleanswerevent.DefaultSelectedComplexity
		_c.mutation.SetSelectedComplexity(v)
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		v := battleanswerevent.DefaultTimedOut
		_c.mutation.SetTimedOut(v)
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		v := battleanswerevent.DefaultTimeMs
		_c.mutation.SetTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BattleAnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BattleAnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BattleAnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "BattleAnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := battleanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "BattleAnswerEvent.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := battleanswerevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "BattleAnswerEvent.round"`)}
	}
	if _, ok := _c.mutation.CorrectComplexity(); !ok {
		return &ValidationError{Name: "correct_complexity", err: errors.New(`ent: missing required field "BattleAnswerEvent.correct_complexity"`)}
	}
	if v, ok := _c.mutation.CorrectComplexity(); ok {
		if err := battleanswerevent.CorrectComplexityValidator(v); err != nil {
			return &ValidationError{Name: "correct_complexity", err: fmt.Errorf(`ent: validator failed for field "BattleAnswerEvent.correct_complexity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedComplexity(); !ok {
		return &ValidationError{Name: "selected_complexity", err: errors.New(`ent: missing required field "BattleAnswerEvent.selected_complexity"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "BattleAnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimedOut(); !ok {
		return &ValidationError{Name: "timed_out", err: errors.New(`ent: missing required field "BattleAnswerEvent.timed_out"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "BattleAnswerEvent.time_ms"`)}
	}
	return nil
}

func (_c *BattleAnswerEventCreate) sqlSave(ctx context.Context) (*BattleAnswerEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BattleAnswerEventCreate) createSpec() (*BattleAnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BattleAnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(battleanswerevent.Table, sqlgraph.NewFieldSpec(battleanswerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(battleanswerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(battleanswerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(battleanswerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(battleanswerevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(battleanswerevent.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.CorrectComplexity(); ok {
		_spec.SetField(battleanswerevent.FieldCorrectComplexity, field.TypeString, value)
		_node.CorrectComplexity = value
	}
	if value, ok := _c.mutation.SelectedComplexity(); ok {
		_spec.SetField(battleanswerevent.FieldSelectedComplexity, field.TypeString, value)
		_node.SelectedComplexity = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(battleanswerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimedOut(); ok {
		_spec.SetField(battleanswerevent.FieldTimedOut, field.TypeBool, value)
		_node.TimedOut = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(battleanswerevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	return _node, _spec
}

// BattleAnswerEventCreateBulk is the builder for creating many BattleAnswerEvent entities in bulk.
type BattleAnswerEventCreateBulk struct {
	config
	err      error
	builders []*BattleAnswerEventCreate
}

// Save creates the BattleAnswerEvent entities in the database.
func (_c *BattleAnswerEventCreateBulk) Save(ctx context.Context) ([]*BattleAnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BattleAnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BattleAnswerEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BattleAnswerEventCreateBulk) SaveX(ctx context.Context) []*BattleAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BattleAnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BattleAnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
