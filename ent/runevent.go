// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ychsiao/tablerush/ent/runevent"
)

// RunEvent is the model entity for the RunEvent schema.
type RunEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID identifying this run
	RunID string `json:"run_id,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode string `json:"mode,omitempty"`
	// Multiplication tables enabled for the run
	Tables []int `json:"tables,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Judged or timed-out questions
	Attempts int `json:"attempts,omitempty"`
	// Seconds of play consumed
	TimeUsed int `json:"time_used,omitempty"`
	// Perfect holds the value of the "perfect" field.
	Perfect      bool `json:"perfect,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runevent.FieldTables:
			values[i] = new([]byte)
		case runevent.FieldPerfect:
			values[i] = new(sql.NullBool)
		case runevent.FieldID, runevent.FieldSequence, runevent.FieldScore, runevent.FieldAttempts, runevent.FieldTimeUsed:
			values[i] = new(sql.NullInt64)
		case runevent.FieldRunID, runevent.FieldDifficulty, runevent.FieldMode:
			values[i] = new(sql.NullString)
		case runevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunEvent fields.
func (_m *RunEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case runevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case runevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case runevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case runevent.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case runevent.FieldTables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tables); err != nil {
					return fmt.Errorf("unmarshal field tables: %w", err)
				}
			}
		case runevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case runevent.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case runevent.FieldTimeUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_used", values[i])
			} else if value.Valid {
				_m.TimeUsed = int(value.Int64)
			}
		case runevent.FieldPerfect:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RunEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RunEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RunEvent.
// Note that you need to call RunEvent.Unwrap() before calling this method if this RunEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunEvent) Update() *RunEventUpdateOne {
	return NewRunEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunEvent) Unwrap() *RunEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RunEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
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
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("time_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeUsed))
	builder.WriteString(", ")
	builder.WriteString("perfect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Perfect))
	builder.WriteByte(')')
	return builder.String()
}

// RunEvents is a parsable slice of RunEvent.
type RunEvents []*RunEvent
