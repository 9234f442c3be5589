// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/dojo/ent/battleanswerevent"
	"github.com/abhisek/dojo/ent/predicate"
)

// BattleAnswerEventDelete is the builder for deleting a BattleAnswerEvent entity.
type BattleAnswerEventDelete struct {
	config
	hooks    []Hook
	mutation *BattleAnswerEventMutation
}

// Where appends a list predicates to the BattleAnswerEventDelete builder.
func (_d *BattleAnswerEventDelete) Where(ps ...predicate.BattleAnswerEvent) *BattleAnswerEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BattleAnswerEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BattleAnswerEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BattleAnswerEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(battleanswerevent.Table, sqlgraph.NewFieldSpec(battleanswerevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BattleAnswerEventDeleteOne is the builder for deleting a single BattleAnswerEvent entity.
type BattleAnswerEventDeleteOne struct {
	_d *BattleAnswerEventDelete
}

// Where appends a list predicates to the BattleAnswerEventDelete builder.
func (_d *BattleAnswerEventDeleteOne) Where(ps ...predicate.BattleAnswerEvent) *BattleAnswerEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BattleAnswerEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{battleanswerevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BattleAnswerEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
