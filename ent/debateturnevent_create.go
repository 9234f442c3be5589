// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/dojo/ent/debateturnevent"
)

// DebateTurnEventCreate is the builder for creating a DebateTurnEvent entity.
type DebateTurnEventCreate struct {
	config
	mutation *DebateTurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DebateTurnEventCreate) SetSequence(v int64) *DebateTurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DebateTurnEventCreate) SetTimestamp(v time.Time) *DebateTurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DebateTurnEventCreate) SetNillableTimestamp(v *time.Time) *DebateTurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *DebateTurnEventCreate) SetSessionID(v string) *DebateTurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *DebateTurnEventCreate) SetRole(v string) *DebateTurnEventCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *DebateTurnEventCreate) SetPhase(v string) *DebateTurnEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DebateTurnEventCreate) SetContent(v string) *DebateTurnEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// Mutation returns the DebateTurnEventMutation object of the builder.
func (_c *DebateTurnEventCreate) Mutation() *DebateTurnEventMutation {
	return _c.mutation
}

// Save creates the DebateTurnEvent in the database.
func (_c *DebateTurnEventCreate) Save(ctx context.Context) (*DebateTurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateTurnEventCreate) SaveX(ctx context.Context) *DebateTurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateTurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateTurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateTurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := debateturnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateTurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DebateTurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DebateTurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DebateTurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := debateturnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "DebateTurnEvent.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := debateturnevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "DebateTurnEvent.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := debateturnevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DebateTurnEvent.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := debateturnevent.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.content": %w`, err)}
		}
	}
	return nil
}

func (_c *DebateTurnEventCreate) sqlSave(ctx context.Context) (*DebateTurnEvent, error) {
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

func (_c *DebateTurnEventCreate) createSpec() (*DebateTurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DebateTurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debateturnevent.Table, sqlgraph.NewFieldSpec(debateturnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(debateturnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(debateturnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(debateturnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(debateturnevent.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(debateturnevent.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(debateturnevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	return _node, _spec
}

// DebateTurnEventCreateBulk is the builder for creating many DebateTurnEvent entities in bulk.
type DebateTurnEventCreateBulk struct {
	config
	err      error
	builders []*DebateTurnEventCreate
}

// Save creates the DebateTurnEvent entities in the database.
func (_c *DebateTurnEventCreateBulk) Save(ctx context.Context) ([]*DebateTurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DebateTurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateTurnEventMutation)
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
func (_c *DebateTurnEventCreateBulk) SaveX(ctx context.Context) []*DebateTurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateTurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateTurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
