// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ychsiao/tablerush/ent/runevent"
)

// RunEventCreate is the builder for creating a RunEvent entity.
type RunEventCreate struct {
	config
	mutation *RunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RunEventCreate) SetSequence(v int64) *RunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RunEventCreate) SetTimestamp(v time.Time) *RunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableTimestamp(v *time.Time) *RunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RunEventCreate) SetRunID(v string) *RunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *RunEventCreate) SetDifficulty(v string) *RunEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *RunEventCreate) SetMode(v string) *RunEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableMode(v *string) *RunEventCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetTables sets the "tables" field.
func (_c *RunEventCreate) SetTables(v []int) *RunEventCreate {
	_c.mutation.SetTables(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RunEventCreate) SetScore(v int) *RunEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *RunEventCreate) SetAttempts(v int) *RunEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetTimeUsed sets the "time_used" field.
func (_c *RunEventCreate) SetTimeUsed(v int) *RunEventCreate {
	_c.mutation.SetTimeUsed(v)
	return _c
}

// SetPerfect sets the "perfect" field.
func (_c *RunEventCreate) SetPerfect(v bool) *RunEventCreate {
	_c.mutation.SetPerfect(v)
	return _c
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_c *RunEventCreate) SetNillablePerfect(v *bool) *RunEventCreate {
	if v != nil {
		_c.SetPerfect(*v)
	}
	return _c
}

// Mutation returns the RunEventMutation object of the builder.
func (_c *RunEventCreate) Mutation() *RunEventMutation {
	return _c.mutation
}

// Save creates the RunEvent in the database.
func (_c *RunEventCreate) Save(ctx context.Context) (*RunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunEventCreate) SaveX(ctx context.Context) *RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := runevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := runevent.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Perfect(); !ok {
		v := runevent.DefaultPerfect
		_c.mutation.SetPerfect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := runevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RunEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "RunEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := runevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "RunEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "RunEvent.mode"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RunEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := runevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "RunEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "RunEvent.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := runevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "RunEvent.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeUsed(); !ok {
		return &ValidationError{Name: "time_used", err: errors.New(`ent: missing required field "RunEvent.time_used"`)}
	}
	if v, ok := _c.mutation.TimeUsed(); ok {
		if err := runevent.TimeUsedValidator(v); err != nil {
			return &ValidationError{Name: "time_used", err: fmt.Errorf(`ent: validator failed for field "RunEvent.time_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Perfect(); !ok {
		return &ValidationError{Name: "perfect", err: errors.New(`ent: missing required field "RunEvent.perfect"`)}
	}
	return nil
}

func (_c *RunEventCreate) sqlSave(ctx context.Context) (*RunEvent, error) {
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

func (_c *RunEventCreate) createSpec() (*RunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runevent.Table, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(runevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(runevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(runevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(runevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Tables(); ok {
		_spec.SetField(runevent.FieldTables, field.TypeJSON, value)
		_node.Tables = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(runevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(runevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.TimeUsed(); ok {
		_spec.SetField(runevent.FieldTimeUsed, field.TypeInt, value)
		_node.TimeUsed = value
	}
	if value, ok := _c.mutation.Perfect(); ok {
		_spec.SetField(runevent.FieldPerfect, field.TypeBool, value)
		_node.Perfect = value
	}
	return _node, _spec
}

// RunEventCreateBulk is the builder for creating many RunEvent entities in bulk.
type RunEventCreateBulk struct {
	config
	err      error
	builders []*RunEventCreate
}

// Save creates the RunEvent entities in the database.
func (_c *RunEventCreateBulk) Save(ctx context.Context) ([]*RunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunEventMutation)
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
func (_c *RunEventCreateBulk) SaveX(ctx context.Context) []*RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
