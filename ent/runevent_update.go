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
	"github.com/ychsiao/tablerush/ent/runevent"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *RunEventUpdate) SetDifficulty(v string) *RunEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableDifficulty(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *RunEventUpdate) SetMode(v string) *RunEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableMode(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTables sets the "tables" field.
func (_u *RunEventUpdate) SetTables(v []int) *RunEventUpdate {
	_u.mutation.SetTables(v)
	return _u
}

// AppendTables appends value to the "tables" field.
func (_u *RunEventUpdate) AppendTables(v []int) *RunEventUpdate {
	_u.mutation.AppendTables(v)
	return _u
}

// ClearTables clears the value of the "tables" field.
func (_u *RunEventUpdate) ClearTables() *RunEventUpdate {
	_u.mutation.ClearTables()
	return _u
}

// SetScore sets the "score" field.
func (_u *RunEventUpdate) SetScore(v int) *RunEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableScore(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RunEventUpdate) AddScore(v int) *RunEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *RunEventUpdate) SetAttempts(v int) *RunEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableAttempts(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *RunEventUpdate) AddAttempts(v int) *RunEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTimeUsed sets the "time_used" field.
func (_u *RunEventUpdate) SetTimeUsed(v int) *RunEventUpdate {
	_u.mutation.ResetTimeUsed()
	_u.mutation.SetTimeUsed(v)
	return _u
}

// SetNillableTimeUsed sets the "time_used" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableTimeUsed(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetTimeUsed(*v)
	}
	return _u
}

// AddTimeUsed adds value to the "time_used" field.
func (_u *RunEventUpdate) AddTimeUsed(v int) *RunEventUpdate {
	_u.mutation.AddTimeUsed(v)
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *RunEventUpdate) SetPerfect(v bool) *RunEventUpdate {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillablePerfect(v *bool) *RunEventUpdate {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdate) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := runevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "RunEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := runevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "RunEvent.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := runevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "RunEvent.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeUsed(); ok {
		if err := runevent.TimeUsedValidator(v); err != nil {
			return &ValidationError{Name: "time_used", err: fmt.Errorf(`ent: validator failed for field "RunEvent.time_used": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(runevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(runevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tables(); ok {
		_spec.SetField(runevent.FieldTables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runevent.FieldTables, value)
		})
	}
	if _u.mutation.TablesCleared() {
		_spec.ClearField(runevent.FieldTables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(runevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(runevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeUsed(); ok {
		_spec.SetField(runevent.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsed(); ok {
		_spec.AddField(runevent.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(runevent.FieldPerfect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetDifficulty sets the "difficulty" field.
func (_u *RunEventUpdateOne) SetDifficulty(v string) *RunEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableDifficulty(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *RunEventUpdateOne) SetMode(v string) *RunEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableMode(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTables sets the "tables" field.
func (_u *RunEventUpdateOne) SetTables(v []int) *RunEventUpdateOne {
	_u.mutation.SetTables(v)
	return _u
}

// AppendTables appends value to the "tables" field.
func (_u *RunEventUpdateOne) AppendTables(v []int) *RunEventUpdateOne {
	_u.mutation.AppendTables(v)
	return _u
}

// ClearTables clears the value of the "tables" field.
func (_u *RunEventUpdateOne) ClearTables() *RunEventUpdateOne {
	_u.mutation.ClearTables()
	return _u
}

// SetScore sets the "score" field.
func (_u *RunEventUpdateOne) SetScore(v int) *RunEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableScore(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RunEventUpdateOne) AddScore(v int) *RunEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *RunEventUpdateOne) SetAttempts(v int) *RunEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableAttempts(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *RunEventUpdateOne) AddAttempts(v int) *RunEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTimeUsed sets the "time_used" field.
func (_u *RunEventUpdateOne) SetTimeUsed(v int) *RunEventUpdateOne {
	_u.mutation.ResetTimeUsed()
	_u.mutation.SetTimeUsed(v)
	return _u
}

// SetNillableTimeUsed sets the "time_used" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableTimeUsed(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetTimeUsed(*v)
	}
	return _u
}

// AddTimeUsed adds value to the "time_used" field.
func (_u *RunEventUpdateOne) AddTimeUsed(v int) *RunEventUpdateOne {
	_u.mutation.AddTimeUsed(v)
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *RunEventUpdateOne) SetPerfect(v bool) *RunEventUpdateOne {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillablePerfect(v *bool) *RunEventUpdateOne {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdateOne) check() error {
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := runevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "RunEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := runevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "RunEvent.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := runevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "RunEvent.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeUsed(); ok {
		if err := runevent.TimeUsedValidator(v); err != nil {
			return &ValidationError{Name: "time_used", err: fmt.Errorf(`ent: validator failed for field "RunEvent.time_used": %w`, err)}
		}
	}
	return nil
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(runevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(runevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tables(); ok {
		_spec.SetField(runevent.FieldTables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runevent.FieldTables, value)
		})
	}
	if _u.mutation.TablesCleared() {
		_spec.ClearField(runevent.FieldTables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(runevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(runevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(runevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeUsed(); ok {
		_spec.SetField(runevent.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsed(); ok {
		_spec.AddField(runevent.FieldTimeUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(runevent.FieldPerfect, field.TypeBool, value)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
