// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ychsiao/tablerush/ent/predicate"
	"github.com/ychsiao/tablerush/ent/runevent"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRunEvent   = "RunEvent"
	TypeScoreEntry = "ScoreEntry"
)

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	run_id        *string
	difficulty    *string
	mode          *string
	tables        *[]int
	appendtables  []int
	score         *int
	addscore      *int
	attempts      *int
	addattempts   *int
	time_used     *int
	addtime_used  *int
	perfect       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RunEvent, error)
	predicates    []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id int) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *RunEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RunEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RunEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RunEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RunEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RunEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RunEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RunEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run_id = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *RunEventMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *RunEventMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *RunEventMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetMode sets the "mode" field.
func (m *RunEventMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *RunEventMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *RunEventMutation) ResetMode() {
	m.mode = nil
}

// SetTables sets the "tables" field.
func (m *RunEventMutation) SetTables(i []int) {
	m.tables = &i
	m.appendtables = nil
}

// Tables returns the value of the "tables" field in the mutation.
func (m *RunEventMutation) Tables() (r []int, exists bool) {
	v := m.tables
	if v == nil {
		return
	}
	return *v, true
}

// OldTables returns the old "tables" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldTables(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTables: %w", err)
	}
	return oldValue.Tables, nil
}

// AppendTables adds i to the "tables" field.
func (m *RunEventMutation) AppendTables(i []int) {
	m.appendtables = append(m.appendtables, i...)
}

// AppendedTables returns the list of values that were appended to the "tables" field in this mutation.
func (m *RunEventMutation) AppendedTables() ([]int, bool) {
	if len(m.appendtables) == 0 {
		return nil, false
	}
	return m.appendtables, true
}

// ClearTables clears the value of the "tables" field.
func (m *RunEventMutation) ClearTables() {
	m.tables = nil
	m.appendtables = nil
	m.clearedFields[runevent.FieldTables] = struct{}{}
}

// TablesCleared returns if the "tables" field was cleared in this mutation.
func (m *RunEventMutation) TablesCleared() bool {
	_, ok := m.clearedFields[runevent.FieldTables]
	return ok
}

// ResetTables resets all changes to the "tables" field.
func (m *RunEventMutation) ResetTables() {
	m.tables = nil
	m.appendtables = nil
	delete(m.clearedFields, runevent.FieldTables)
}

// SetScore sets the "score" field.
func (m *RunEventMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RunEventMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *RunEventMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RunEventMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RunEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAttempts sets the "attempts" field.
func (m *RunEventMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *RunEventMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *RunEventMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *RunEventMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *RunEventMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetTimeUsed sets the "time_used" field.
func (m *RunEventMutation) SetTimeUsed(i int) {
	m.time_used = &i
	m.addtime_used = nil
}

// TimeUsed returns the value of the "time_used" field in the mutation.
func (m *RunEventMutation) TimeUsed() (r int, exists bool) {
	v := m.time_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeUsed returns the old "time_used" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldTimeUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeUsed: %w", err)
	}
	return oldValue.TimeUsed, nil
}

// AddTimeUsed adds i to the "time_used" field.
func (m *RunEventMutation) AddTimeUsed(i int) {
	if m.addtime_used != nil {
		*m.addtime_used += i
	} else {
		m.addtime_used = &i
	}
}

// AddedTimeUsed returns the value that was added to the "time_used" field in this mutation.
func (m *RunEventMutation) AddedTimeUsed() (r int, exists bool) {
	v := m.addtime_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeUsed resets all changes to the "time_used" field.
func (m *RunEventMutation) ResetTimeUsed() {
	m.time_used = nil
	m.addtime_used = nil
}

// SetPerfect sets the "perfect" field.
func (m *RunEventMutation) SetPerfect(b bool) {
	m.perfect = &b
}

// Perfect returns the value of the "perfect" field in the mutation.
func (m *RunEventMutation) Perfect() (r bool, exists bool) {
	v := m.perfect
	if v == nil {
		return
	}
	return *v, true
}

// OldPerfect returns the old "perfect" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPerfect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerfect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerfect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerfect: %w", err)
	}
	return oldValue.Perfect, nil
}

// ResetPerfect resets all changes to the "perfect" field.
func (m *RunEventMutation) ResetPerfect() {
	m.perfect = nil
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, runevent.FieldTimestamp)
	}
	if m.run_id != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.difficulty != nil {
		fields = append(fields, runevent.FieldDifficulty)
	}
	if m.mode != nil {
		fields = append(fields, runevent.FieldMode)
	}
	if m.tables != nil {
		fields = append(fields, runevent.FieldTables)
	}
	if m.score != nil {
		fields = append(fields, runevent.FieldScore)
	}
	if m.attempts != nil {
		fields = append(fields, runevent.FieldAttempts)
	}
	if m.time_used != nil {
		fields = append(fields, runevent.FieldTimeUsed)
	}
	if m.perfect != nil {
		fields = append(fields, runevent.FieldPerfect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSequence:
		return m.Sequence()
	case runevent.FieldTimestamp:
		return m.Timestamp()
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldDifficulty:
		return m.Difficulty()
	case runevent.FieldMode:
		return m.Mode()
	case runevent.FieldTables:
		return m.Tables()
	case runevent.FieldScore:
		return m.Score()
	case runevent.FieldAttempts:
		return m.Attempts()
	case runevent.FieldTimeUsed:
		return m.TimeUsed()
	case runevent.FieldPerfect:
		return m.Perfect()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldSequence:
		return m.OldSequence(ctx)
	case runevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case runevent.FieldMode:
		return m.OldMode(ctx)
	case runevent.FieldTables:
		return m.OldTables(ctx)
	case runevent.FieldScore:
		return m.OldScore(ctx)
	case runevent.FieldAttempts:
		return m.OldAttempts(ctx)
	case runevent.FieldTimeUsed:
		return m.OldTimeUsed(ctx)
	case runevent.FieldPerfect:
		return m.OldPerfect(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case runevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case runevent.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case runevent.FieldTables:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTables(v)
		return nil
	case runevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case runevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case runevent.FieldTimeUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeUsed(v)
		return nil
	case runevent.FieldPerfect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerfect(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, runevent.FieldScore)
	}
	if m.addattempts != nil {
		fields = append(fields, runevent.FieldAttempts)
	}
	if m.addtime_used != nil {
		fields = append(fields, runevent.FieldTimeUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSequence:
		return m.AddedSequence()
	case runevent.FieldScore:
		return m.AddedScore()
	case runevent.FieldAttempts:
		return m.AddedAttempts()
	case runevent.FieldTimeUsed:
		return m.AddedTimeUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case runevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case runevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case runevent.FieldTimeUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeUsed(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runevent.FieldTables) {
		fields = append(fields, runevent.FieldTables)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	switch name {
	case runevent.FieldTables:
		m.ClearTables()
		return nil
	}
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldSequence:
		m.ResetSequence()
		return nil
	case runevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case runevent.FieldMode:
		m.ResetMode()
		return nil
	case runevent.FieldTables:
		m.ResetTables()
		return nil
	case runevent.FieldScore:
		m.ResetScore()
		return nil
	case runevent.FieldAttempts:
		m.ResetAttempts()
		return nil
	case runevent.FieldTimeUsed:
		m.ResetTimeUsed()
		return nil
	case runevent.FieldPerfect:
		m.ResetPerfect()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// ScoreEntryMutation represents an operation that mutates the ScoreEntry nodes in the graph.
type ScoreEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	entry_id      *string
	name          *string
	score         *int
	addscore      *int
	time_used     *int
	addtime_used  *int
	difficulty    *string
	mode          *string
	tables        *[]int
	appendtables  []int
	perfect       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ScoreEntry, error)
	predicates    []predicate.ScoreEntry
}

var _ ent.Mutation = (*ScoreEntryMutation)(nil)

// scoreentryOption allows management of the mutation configuration using functional options.
type scoreentryOption func(*ScoreEntryMutation)

// newScoreEntryMutation creates new mutation for the ScoreEntry entity.
func newScoreEntryMutation(c config, op Op, opts ...scoreentryOption) *ScoreEntryMutation {
	m := &ScoreEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeScoreEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoreEntryID sets the ID field of the mutation.
func withScoreEntryID(id int) scoreentryOption {
	return func(m *ScoreEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoreEntry
		)
		m.oldValue = func(ctx context.Context) (*ScoreEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoreEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoreEntry sets the old ScoreEntry of the mutation.
func withScoreEntry(node *ScoreEntry) scoreentryOption {
	return func(m *ScoreEntryMutation) {
		m.oldValue = func(context.Context) (*ScoreEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoreEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoreEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoreEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoreEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoreEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScoreEntryMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScoreEntryMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ScoreEntryMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScoreEntryMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScoreEntryMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScoreEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScoreEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ScoreEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEntryID sets the "entry_id" field.
func (m *ScoreEntryMutation) SetEntryID(s string) {
	m.entry_id = &s
}

// EntryID returns the value of the "entry_id" field in the mutation.
func (m *ScoreEntryMutation) EntryID() (r string, exists bool) {
	v := m.entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryID returns the old "entry_id" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldEntryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryID: %w", err)
	}
	return oldValue.EntryID, nil
}

// ResetEntryID resets all changes to the "entry_id" field.
func (m *ScoreEntryMutation) ResetEntryID() {
	m.entry_id = nil
}

// SetName sets the "name" field.
func (m *ScoreEntryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScoreEntryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScoreEntryMutation) ResetName() {
	m.name = nil
}

// SetScore sets the "score" field.
func (m *ScoreEntryMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ScoreEntryMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ScoreEntryMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ScoreEntryMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ScoreEntryMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTimeUsed sets the "time_used" field.
func (m *ScoreEntryMutation) SetTimeUsed(i int) {
	m.time_used = &i
	m.addtime_used = nil
}

// TimeUsed returns the value of the "time_used" field in the mutation.
func (m *ScoreEntryMutation) TimeUsed() (r int, exists bool) {
	v := m.time_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeUsed returns the old "time_used" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldTimeUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeUsed: %w", err)
	}
	return oldValue.TimeUsed, nil
}

// AddTimeUsed adds i to the "time_used" field.
func (m *ScoreEntryMutation) AddTimeUsed(i int) {
	if m.addtime_used != nil {
		*m.addtime_used += i
	} else {
		m.addtime_used = &i
	}
}

// AddedTimeUsed returns the value that was added to the "time_used" field in this mutation.
func (m *ScoreEntryMutation) AddedTimeUsed() (r int, exists bool) {
	v := m.addtime_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeUsed resets all changes to the "time_used" field.
func (m *ScoreEntryMutation) ResetTimeUsed() {
	m.time_used = nil
	m.addtime_used = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ScoreEntryMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ScoreEntryMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ScoreEntryMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetMode sets the "mode" field.
func (m *ScoreEntryMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ScoreEntryMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ScoreEntryMutation) ResetMode() {
	m.mode = nil
}

// SetTables sets the "tables" field.
func (m *ScoreEntryMutation) SetTables(i []int) {
	m.tables = &i
	m.appendtables = nil
}

// Tables returns the value of the "tables" field in the mutation.
func (m *ScoreEntryMutation) Tables() (r []int, exists bool) {
	v := m.tables
	if v == nil {
		return
	}
	return *v, true
}

// OldTables returns the old "tables" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldTables(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTables: %w", err)
	}
	return oldValue.Tables, nil
}

// AppendTables adds i to the "tables" field.
func (m *ScoreEntryMutation) AppendTables(i []int) {
	m.appendtables = append(m.appendtables, i...)
}

// AppendedTables returns the list of values that were appended to the "tables" field in this mutation.
func (m *ScoreEntryMutation) AppendedTables() ([]int, bool) {
	if len(m.appendtables) == 0 {
		return nil, false
	}
	return m.appendtables, true
}

// ClearTables clears the value of the "tables" field.
func (m *ScoreEntryMutation) ClearTables() {
	m.tables = nil
	m.appendtables = nil
	m.clearedFields[scoreentry.FieldTables] = struct{}{}
}

// TablesCleared returns if the "tables" field was cleared in this mutation.
func (m *ScoreEntryMutation) TablesCleared() bool {
	_, ok := m.clearedFields[scoreentry.FieldTables]
	return ok
}

// ResetTables resets all changes to the "tables" field.
func (m *ScoreEntryMutation) ResetTables() {
	m.tables = nil
	m.appendtables = nil
	delete(m.clearedFields, scoreentry.FieldTables)
}

// SetPerfect sets the "perfect" field.
func (m *ScoreEntryMutation) SetPerfect(b bool) {
	m.perfect = &b
}

// Perfect returns the value of the "perfect" field in the mutation.
func (m *ScoreEntryMutation) Perfect() (r bool, exists bool) {
	v := m.perfect
	if v == nil {
		return
	}
	return *v, true
}

// OldPerfect returns the old "perfect" field's value of the ScoreEntry entity.
// If the ScoreEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEntryMutation) OldPerfect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerfect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerfect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerfect: %w", err)
	}
	return oldValue.Perfect, nil
}

// ResetPerfect resets all changes to the "perfect" field.
func (m *ScoreEntryMutation) ResetPerfect() {
	m.perfect = nil
}

// Where appends a list predicates to the ScoreEntryMutation builder.
func (m *ScoreEntryMutation) Where(ps ...predicate.ScoreEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoreEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoreEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoreEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoreEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoreEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoreEntry).
func (m *ScoreEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoreEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, scoreentry.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, scoreentry.FieldTimestamp)
	}
	if m.entry_id != nil {
		fields = append(fields, scoreentry.FieldEntryID)
	}
	if m.name != nil {
		fields = append(fields, scoreentry.FieldName)
	}
	if m.score != nil {
		fields = append(fields, scoreentry.FieldScore)
	}
	if m.time_used != nil {
		fields = append(fields, scoreentry.FieldTimeUsed)
	}
	if m.difficulty != nil {
		fields = append(fields, scoreentry.FieldDifficulty)
	}
	if m.mode != nil {
		fields = append(fields, scoreentry.FieldMode)
	}
	if m.tables != nil {
		fields = append(fields, scoreentry.FieldTables)
	}
	if m.perfect != nil {
		fields = append(fields, scoreentry.FieldPerfect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoreEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoreentry.FieldSequence:
		return m.Sequence()
	case scoreentry.FieldTimestamp:
		return m.Timestamp()
	case scoreentry.FieldEntryID:
		return m.EntryID()
	case scoreentry.FieldName:
		return m.Name()
	case scoreentry.FieldScore:
		return m.Score()
	case scoreentry.FieldTimeUsed:
		return m.TimeUsed()
	case scoreentry.FieldDifficulty:
		return m.Difficulty()
	case scoreentry.FieldMode:
		return m.Mode()
	case scoreentry.FieldTables:
		return m.Tables()
	case scoreentry.FieldPerfect:
		return m.Perfect()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoreEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoreentry.FieldSequence:
		return m.OldSequence(ctx)
	case scoreentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case scoreentry.FieldEntryID:
		return m.OldEntryID(ctx)
	case scoreentry.FieldName:
		return m.OldName(ctx)
	case scoreentry.FieldScore:
		return m.OldScore(ctx)
	case scoreentry.FieldTimeUsed:
		return m.OldTimeUsed(ctx)
	case scoreentry.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case scoreentry.FieldMode:
		return m.OldMode(ctx)
	case scoreentry.FieldTables:
		return m.OldTables(ctx)
	case scoreentry.FieldPerfect:
		return m.OldPerfect(ctx)
	}
	return nil, fmt.Errorf("unknown ScoreEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoreentry.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case scoreentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case scoreentry.FieldEntryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryID(v)
		return nil
	case scoreentry.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scoreentry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case scoreentry.FieldTimeUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeUsed(v)
		return nil
	case scoreentry.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case scoreentry.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case scoreentry.FieldTables:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTables(v)
		return nil
	case scoreentry.FieldPerfect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerfect(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoreEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, scoreentry.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, scoreentry.FieldScore)
	}
	if m.addtime_used != nil {
		fields = append(fields, scoreentry.FieldTimeUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoreEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scoreentry.FieldSequence:
		return m.AddedSequence()
	case scoreentry.FieldScore:
		return m.AddedScore()
	case scoreentry.FieldTimeUsed:
		return m.AddedTimeUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scoreentry.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case scoreentry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case scoreentry.FieldTimeUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeUsed(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoreEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scoreentry.FieldTables) {
		fields = append(fields, scoreentry.FieldTables)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoreEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoreEntryMutation) ClearField(name string) error {
	switch name {
	case scoreentry.FieldTables:
		m.ClearTables()
		return nil
	}
	return fmt.Errorf("unknown ScoreEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoreEntryMutation) ResetField(name string) error {
	switch name {
	case scoreentry.FieldSequence:
		m.ResetSequence()
		return nil
	case scoreentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case scoreentry.FieldEntryID:
		m.ResetEntryID()
		return nil
	case scoreentry.FieldName:
		m.ResetName()
		return nil
	case scoreentry.FieldScore:
		m.ResetScore()
		return nil
	case scoreentry.FieldTimeUsed:
		m.ResetTimeUsed()
		return nil
	case scoreentry.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case scoreentry.FieldMode:
		m.ResetMode()
		return nil
	case scoreentry.FieldTables:
		m.ResetTables()
		return nil
	case scoreentry.FieldPerfect:
		m.ResetPerfect()
		return nil
	}
	return fmt.Errorf("unknown ScoreEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoreEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoreEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoreEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoreEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoreEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoreEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoreEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScoreEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoreEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScoreEntry edge %s", name)
}
