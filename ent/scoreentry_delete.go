// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ychsiao/tablerush/ent/predicate"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

// ScoreEntryDelete is the builder for deleting a ScoreEntry entity.
type ScoreEntryDelete struct {
	config
	hooks    []Hook
	mutation *ScoreEntryMutation
}

// Where appends a list predicates to the ScoreEntryDelete builder.
func (_d *ScoreEntryDelete) Where(ps ...predicate.ScoreEntry) *ScoreEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScoreEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScoreEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScoreEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scoreentry.Table, sqlgraph.NewFieldSpec(scoreentry.FieldID, field.TypeInt))
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

// ScoreEntryDeleteOne is the builder for deleting a single ScoreEntry entity.
type ScoreEntryDeleteOne struct {
	_d *ScoreEntryDelete
}

// Where appends a list predicates to the ScoreEntryDelete builder.
func (_d *ScoreEntryDeleteOne) Where(ps ...predicate.ScoreEntry) *ScoreEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScoreEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scoreentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScoreEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
