// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

// ScoreEntry is the model entity for the ScoreEntry schema.
type ScoreEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID identifying this entry
	EntryID string `json:"entry_id,omitempty"`
	// Player name, 2-20 characters
	Name string `json:"name,omitempty"`
	// Correct answers in the run
	Score int `json:"score,omitempty"`
	// Seconds of play consumed
	TimeUsed int `json:"time_used,omitempty"`
	// Difficulty name the run was played at
	Difficulty string `json:"difficulty,omitempty"`
	// basic or narrative
	Mode string `json:"mode,omitempty"`
	// Multiplication tables enabled for the run
	Tables []int `json:"tables,omitempty"`
	// Every attempt was correct
	Perfect      bool `json:"perfect,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoreentry.FieldTables:
			values[i] = new([]byte)
		case scoreentry.FieldPerfect:
			values[i] = new(sql.NullBool)
		case scoreentry.FieldID, scoreentry.FieldSequence, scoreentry.FieldScore, scoreentry.FieldTimeUsed:
			values[i] = new(sql.NullInt64)
		case scoreentry.FieldEntryID, scoreentry.FieldName, scoreentry.FieldDifficulty, scoreentry.FieldMode:
			values[i] = new(sql.NullString)
		case scoreentry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreEntry fields.
func (_m *ScoreEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoreentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scoreentry.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scoreentry.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scoreentry.FieldEntryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_id", values[i])
			} else if value.Valid {
				_m.EntryID = value.String
			}
		case scoreentry.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case scoreentry.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case scoreentry.FieldTimeUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_used", values[i])
			} else if value.Valid {
				_m.TimeUsed = int(value.Int64)
			}
		case scoreentry.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case scoreentry.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case scoreentry.FieldTables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tables); err != nil {
					return fmt.Errorf("unmarshal field tables: %w", err)
				}
			}
		case scoreentry.FieldPerfect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field perfect", values[i])
			} else if value.Valid {
				_m.Perfect = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScoreEntry.
// Note that you need to call ScoreEntry.Unwrap() before calling this method if this ScoreEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreEntry) Update() *ScoreEntryUpdateOne {
	return NewScoreEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreEntry) Unwrap() *ScoreEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("entry_id=")
	builder.WriteString(_m.EntryID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("time_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeUsed))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("tables=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tables))
	builder.WriteString(", ")
	builder.WriteString("perfect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Perfect))
	builder.WriteByte(')')
	return builder.String()
}

// ScoreEntries is a parsable slice of ScoreEntry.
type ScoreEntries []*ScoreEntry
