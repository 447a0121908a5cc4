// Code generated by ent, DO NOT EDIT.

package scoreentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scoreentry type in the database.
	Label = "score_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEntryID holds the string denoting the entry_id field in the database.
	FieldEntryID = "entry_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTimeUsed holds the string denoting the time_used field in the database.
	FieldTimeUsed = "time_used"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldTables holds the string denoting the tables field in the database.
	FieldTables = "tables"
	// FieldPerfect holds the string denoting the perfect field in the database.
	FieldPerfect = "perfect"
	// Table holds the table name of the scoreentry in the database.
	Table = "score_entries"
)

// Columns holds all SQL columns for scoreentry fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEntryID,
	FieldName,
	FieldScore,
	FieldTimeUsed,
	FieldDifficulty,
	FieldMode,
	FieldTables,
	FieldPerfect,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	EntryIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// TimeUsedValidator is a validator for the "time_used" field. It is called by the builders before save.
	TimeUsedValidator func(int) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
	// DefaultPerfect holds the default value on creation for the "perfect" field.
	DefaultPerfect bool
)

// OrderOption defines the ordering options for the ScoreEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEntryID orders the results by the entry_id field.
func ByEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTimeUsed orders the results by the time_used field.
func ByTimeUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeUsed, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByPerfect orders the results by the perfect field.
func ByPerfect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerfect, opts...).ToFunc()
}
