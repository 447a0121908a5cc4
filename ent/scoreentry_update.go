// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ychsiao/tablerush/ent/predicate"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

// ScoreEntryUpdate is the builder for updating ScoreEntry entities.
type ScoreEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreEntryMutation
}

// Where appends a list predicates to the ScoreEntryUpdate builder.
func (_u *ScoreEntryUpdate) Where(ps ...predicate.ScoreEntry) *ScoreEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScoreEntryUpdate) SetName(v string) *ScoreEntryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScoreEntryUpdate) SetNillableName(v *string) *ScoreEntryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreEntryUpdate) SetScore(v int) *ScoreEntryUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreEntryUpdate) SetNillableScore(v *int) *ScoreEntryUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreEntryUpdate) AddScore(v int) *ScoreEntryUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeUsed sets the "time_used" field.
func (_u *ScoreEntryUpdate) SetTimeUsed(v int) *ScoreEntryUpdate {
	_u.mutation.ResetTimeUsed()
	_u.mutation.SetTimeUsed(v)
	return _u
}

// SetNillableTimeUsed sets the "time_used" field if the given value is not nil.
func (_u *ScoreEntryUpdate) SetNillableTimeUsed(v *int) *ScoreEntryUpdate {
	if v != nil {
		_u.SetTimeUsed(*v)
	}
	return _u
}

// AddTimeUsed adds value to the "time_used" field.
func (_u *ScoreEntryUpdate) AddTimeUsed(v int) *ScoreEntryUpdate {
	_u.mutation.AddTimeUsed(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ScoreEntryUpdate) SetDifficulty(v string) *ScoreEntryUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ScoreEntryUpdate) SetNillableDifficulty(v *string) *ScoreEntryUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ScoreEntryUpdate) SetMode(v string) *ScoreEntryUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ScoreEntryUpdate) SetNillableMode(v *string) *ScoreEntryUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTables sets the "tables" field.
func (_u *ScoreEntryUpdate) SetTables(v []int) *ScoreEntryUpdate {
	_u.mutation.SetTables(v)
	return _u
}

// AppendTables appends value to the "tables" field.
func (_u *ScoreEntryUpdate) AppendTables(v []int) *ScoreEntryUpdate {
	_u.mutation.AppendTables(v)
	return _u
}

// ClearTables clears the value of the "tables" field.
func (_u *ScoreEntryUpdate) ClearTables() *ScoreEntryUpdate {
	_u.mutation.ClearTables()
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *ScoreEntryUpdate) SetPerfect(v bool) *ScoreEntryUpdate {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *ScoreEntryUpdate) SetNillablePerfect(v *bool) *ScoreEntryUpdate {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// Mutation returns the ScoreEntryMutation object of the builder.
func (_u *ScoreEntryUpdate) Mutation() *ScoreEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEntryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scoreentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := scoreentry.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeUsed(); ok {
		if err := scoreentry.TimeUsedValidator(v); err != nil {
			return &ValidationError{Name: "time_used", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.time_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := scoreentry.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreentry.Table, scoreentry.Columns, sqlgraph.NewFieldSpec(scoreentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scoreentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoreentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoreentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeUsed(); ok {
		_spec.SetField(scoreentry.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsed(); ok {
		_spec.AddField(scoreentry.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(scoreentry.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(scoreentry.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tables(); ok {
		_spec.SetField(scoreentry.FieldTables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scoreentry.FieldTables, value)
		})
	}
	if _u.mutation.TablesCleared() {
		_spec.ClearField(scoreentry.FieldTables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(scoreentry.FieldPerfect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreEntryUpdateOne is the builder for updating a single ScoreEntry entity.
type ScoreEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreEntryMutation
}

// SetName sets the "name" field.
func (_u *ScoreEntryUpdateOne) SetName(v string) *ScoreEntryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScoreEntryUpdateOne) SetNillableName(v *string) *ScoreEntryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreEntryUpdateOne) SetScore(v int) *ScoreEntryUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreEntryUpdateOne) SetNillableScore(v *int) *ScoreEntryUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreEntryUpdateOne) AddScore(v int) *ScoreEntryUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeUsed sets the "time_used" field.
func (_u *ScoreEntryUpdateOne) SetTimeUsed(v int) *ScoreEntryUpdateOne {
	_u.mutation.ResetTimeUsed()
	_u.mutation.SetTimeUsed(v)
	return _u
}

// SetNillableTimeUsed sets the "time_used" field if the given value is not nil.
func (_u *ScoreEntryUpdateOne) SetNillableTimeUsed(v *int) *ScoreEntryUpdateOne {
	if v != nil {
		_u.SetTimeUsed(*v)
	}
	return _u
}

// AddTimeUsed adds value to the "time_used" field.
func (_u *ScoreEntryUpdateOne) AddTimeUsed(v int) *ScoreEntryUpdateOne {
	_u.mutation.AddTimeUsed(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ScoreEntryUpdateOne) SetDifficulty(v string) *ScoreEntryUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ScoreEntryUpdateOne) SetNillableDifficulty(v *string) *ScoreEntryUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ScoreEntryUpdateOne) SetMode(v string) *ScoreEntryUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ScoreEntryUpdateOne) SetNillableMode(v *string) *ScoreEntryUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTables sets the "tables" field.
func (_u *ScoreEntryUpdateOne) SetTables(v []int) *ScoreEntryUpdateOne {
	_u.mutation.SetTables(v)
	return _u
}

// AppendTables appends value to the "tables" field.
func (_u *ScoreEntryUpdateOne) AppendTables(v []int) *ScoreEntryUpdateOne {
	_u.mutation.AppendTables(v)
	return _u
}

// ClearTables clears the value of the "tables" field.
func (_u *ScoreEntryUpdateOne) ClearTables() *ScoreEntryUpdateOne {
	_u.mutation.ClearTables()
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *ScoreEntryUpdateOne) SetPerfect(v bool) *ScoreEntryUpdateOne {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *ScoreEntryUpdateOne) SetNillablePerfect(v *bool) *ScoreEntryUpdateOne {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// Mutation returns the ScoreEntryMutation object of the builder.
func (_u *ScoreEntryUpdateOne) Mutation() *ScoreEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreEntryUpdate builder.
func (_u *ScoreEntryUpdateOne) Where(ps ...predicate.ScoreEntry) *ScoreEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreEntryUpdateOne) Select(field string, fields ...string) *ScoreEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreEntry entity.
func (_u *ScoreEntryUpdateOne) Save(ctx context.Context) (*ScoreEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEntryUpdateOne) SaveX(ctx context.Context) *ScoreEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scoreentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := scoreentry.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeUsed(); ok {
		if err := scoreentry.TimeUsedValidator(v); err != nil {
			return &ValidationError{Name: "time_used", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.time_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := scoreentry.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ScoreEntry.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEntryUpdateOne) sqlSave(ctx context.Context) (_node *ScoreEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreentry.Table, scoreentry.Columns, sqlgraph.NewFieldSpec(scoreentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreentry.FieldID)
		for _, f := range fields {
			if !scoreentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreentry.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scoreentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoreentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoreentry.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeUsed(); ok {
		_spec.SetField(scoreentry.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsed(); ok {
		_spec.AddField(scoreentry.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(scoreentry.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(scoreentry.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tables(); ok {
		_spec.SetField(scoreentry.FieldTables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scoreentry.FieldTables, value)
		})
	}
	if _u.mutation.TablesCleared() {
		_spec.ClearField(scoreentry.FieldTables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(scoreentry.FieldPerfect, field.TypeBool, value)
	}
	_node = &ScoreEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
