// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/dojo/ent/debateturnevent"
	"github.com/abhisek/dojo/ent/predicate"
)

// DebateTurnEventUpdate is the builder for updating DebateTurnEvent entities.
type DebateTurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *DebateTurnEventMutation
}

// Where appends a list predicates to the DebateTurnEventUpdate builder.
func (_u *DebateTurnEventUpdate) Where(ps ...predicate.DebateTurnEvent) *DebateTurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DebateTurnEventUpdate) SetSessionID(v string) *DebateTurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DebateTurnEventUpdate) SetNillableSessionID(v *string) *DebateTurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *DebateTurnEventUpdate) SetRole(v string) *DebateTurnEventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DebateTurnEventUpdate) SetNillableRole(v *string) *DebateTurnEventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateTurnEventUpdate) SetPhase(v string) *DebateTurnEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateTurnEventUpdate) SetNillablePhase(v *string) *DebateTurnEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DebateTurnEventUpdate) SetContent(v string) *DebateTurnEventUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DebateTurnEventUpdate) SetNillableContent(v *string) *DebateTurnEventUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the DebateTurnEventMutation object of the builder.
func (_u *DebateTurnEventUpdate) Mutation() *DebateTurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateTurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateTurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateTurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateTurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateTurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := debateturnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := debateturnevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := debateturnevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := debateturnevent.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.content": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateTurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateturnevent.Table, debateturnevent.Columns, sqlgraph.NewFieldSpec(debateturnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(debateturnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(debateturnevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debateturnevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(debateturnevent.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debateturnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateTurnEventUpdateOne is the builder for updating a single DebateTurnEvent entity.
type DebateTurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateTurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DebateTurnEventUpdateOne) SetSessionID(v string) *DebateTurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DebateTurnEventUpdateOne) SetNillableSessionID(v *string) *DebateTurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *DebateTurnEventUpdateOne) SetRole(v string) *DebateTurnEventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DebateTurnEventUpdateOne) SetNillableRole(v *string) *DebateTurnEventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateTurnEventUpdateOne) SetPhase(v string) *DebateTurnEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateTurnEventUpdateOne) SetNillablePhase(v *string) *DebateTurnEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DebateTurnEventUpdateOne) SetContent(v string) *DebateTurnEventUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DebateTurnEventUpdateOne) SetNillableContent(v *string) *DebateTurnEventUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the DebateTurnEventMutation object of the builder.
func (_u *DebateTurnEventUpdateOne) Mutation() *DebateTurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DebateTurnEventUpdate builder.
func (_u *DebateTurnEventUpdateOne) Where(ps ...predicate.DebateTurnEvent) *DebateTurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateTurnEventUpdateOne) Select(field string, fields ...string) *DebateTurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DebateTurnEvent entity.
func (_u *DebateTurnEventUpdateOne) Save(ctx context.Context) (*DebateTurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateTurnEventUpdateOne) SaveX(ctx context.Context) *DebateTurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateTurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateTurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateTurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := debateturnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := debateturnevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := debateturnevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := debateturnevent.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "DebateTurnEvent.content": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateTurnEventUpdateOne) sqlSave(ctx context.Context) (_node *DebateTurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateturnevent.Table, debateturnevent.Columns, sqlgraph.NewFieldSpec(debateturnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DebateTurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debateturnevent.FieldID)
		for _, f := range fields {
			if !debateturnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debateturnevent.FieldID {
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
		_spec.SetField(debateturnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(debateturnevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debateturnevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(debateturnevent.FieldContent, field.TypeString, value)
	}
	_node = &DebateTurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debateturnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
