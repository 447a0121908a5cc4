// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

// ScoreEntryCreate is the builder for creating a ScoreEntry entity.
type ScoreEntryCreate struct {
	config
	mutation *ScoreEntryMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScoreEntryCreate) SetSequence(v int64) *ScoreEntryCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScoreEntryCreate) SetTimestamp(v time.Time) *ScoreEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScoreEntryCreate) SetNillableTimestamp(v *time.Time) *ScoreEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEntryID sets the "entry_id" field.
func (_c *ScoreEntryCreate) SetEntryID(v string) *ScoreEntryCreate {
	_c.mutation.SetEntryID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ScoreEntryCreate) SetName(v string) *ScoreEntryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ScoreEntryCreate) SetScore(v int) *ScoreEntryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTimeUsed sets the "time_used" field.
func (_c *ScoreEntryCreate) SetTimeUsed(v int) *ScoreEntryCreate {
	_c.mutation.SetTimeUsed(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ScoreEntryCreate) SetDifficulty(v string) *ScoreEntryCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ScoreEntryCreate) SetMode(v string) *ScoreEntryCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ScoreEntryCreate) SetNillableMode(v *string) *ScoreEntryCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetTables sets the "tables" field.
func (_c *ScoreEntryCreate) SetTables(v []int) *ScoreEntryCreate {
	_c.mutation.SetTables(v)
	return _c
}

// SetPerfect sets the "perfect" field.
func (_c *ScoreEntryCreate) SetPerfect(v bool) *ScoreEntryCreate {
	_c.mutation.SetPerfect(v)
	return _c
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_c *ScoreEntryCreate) SetNillablePerfect(v *bool) *ScoreEntryCreate {
	if v != nil {
		_c.SetPerfect(*v)
	}
	return _c
}

// Mutation returns the ScoreEntryMutation object of the builder.
func (_c *ScoreEntryCreate) Mutation() *ScoreEntryMutation {
	return _c.mutation
}

// Save creates the ScoreEntry in the database.
func (_c *ScoreEntryCreate) Save(ctx context.Context) (*ScoreEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreEntryCreate) SaveX(ctx context.Context) *ScoreEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scoreentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := scoreentry.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Perfect(); !ok {
		v := scoreentry.DefaultPerfect
		_c.mutation.SetPerfect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreEntryCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScoreEntry.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScoreEntry.timestamp"`)}
	}
	if _, ok := _c.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`ent: missing required field "ScoreEntry.entry_id"`)}
	}
	if v, ok := _c.mutation.EntryID(); ok {
		if err := scoreentry.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.entry_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ScoreEntry.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := scoreentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ScoreEntry.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := scoreentry.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeUsed(); !ok {
		return &ValidationError{Name: "time_used", err: errors.New(`ent: missing required field "ScoreEntry.time_used"`)}
	}
	if v, ok := _c.mutation.TimeUsed(); ok {
		if err := scoreentry.TimeUsedValidator(v); err != nil {
			return &ValidationError{Name: "time_used", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.time_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ScoreEntry.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := scoreentry.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ScoreEntry.mode"`)}
	}
	if _, ok := _c.mutation.Perfect(); !ok {
		return &ValidationError{Name: "perfect", err: errors.New(`ent: missing required field "ScoreEntry.perfect"`)}
	}
	return nil
}

func (_c *ScoreEntryCreate) sqlSave(ctx context.Context) (*ScoreEntry, error) {
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

func (_c *ScoreEntryCreate) createSpec() (*ScoreEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoreentry.Table, sqlgraph.NewFieldSpec(scoreentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scoreentry.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scoreentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EntryID(); ok {
		_spec.SetField(scoreentry.FieldEntryID, field.TypeString, value)
		_node.EntryID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scoreentry.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(scoreentry.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TimeUsed(); ok {
		_spec.SetField(scoreentry.FieldTimeUsed, field.TypeInt, value)
		_node.TimeUsed = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(scoreentry.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(scoreentry.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Tables(); ok {
		_spec.SetField(scoreentry.FieldTables, field.TypeJSON, value)
		_node.Tables = value
	}
	if value, ok := _c.mutation.Perfect(); ok {
		_spec.SetField(scoreentry.FieldPerfect, field.TypeBool, value)
		_node.Perfect = value
	}
	return _node, _spec
}

// ScoreEntryCreateBulk is the builder for creating many ScoreEntry entities in bulk.
type ScoreEntryCreateBulk struct {
	config
	err      error
	builders []*ScoreEntryCreate
}

// Save creates the ScoreEntry entities in the database.
func (_c *ScoreEntryCreateBulk) Save(ctx context.Context) ([]*ScoreEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreEntryMutation)
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
func (_c *ScoreEntryCreateBulk) SaveX(ctx context.Context) []*ScoreEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
