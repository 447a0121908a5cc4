// Code generated by ent, DO NOT EDIT.

package scoreentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ychsiao/tablerush/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldTimestamp, v))
}

// EntryID applies equality check predicate on the "entry_id" field. It's identical to EntryIDEQ.
func EntryID(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldEntryID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldScore, v))
}

// TimeUsed applies equality check predicate on the "time_used" field. It's identical to TimeUsedEQ.
func TimeUsed(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldTimeUsed, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldDifficulty, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldMode, v))
}

// Perfect applies equality check predicate on the "perfect" field. It's identical to PerfectEQ.
func Perfect(v bool) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldPerfect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldTimestamp, v))
}

// EntryIDEQ applies the EQ predicate on the "entry_id" field.
func EntryIDEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldEntryID, v))
}

// EntryIDNEQ applies the NEQ predicate on the "entry_id" field.
func EntryIDNEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldEntryID, v))
}

// EntryIDIn applies the In predicate on the "entry_id" field.
func EntryIDIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldEntryID, vs...))
}

// EntryIDNotIn applies the NotIn predicate on the "entry_id" field.
func EntryIDNotIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldEntryID, vs...))
}

// EntryIDGT applies the GT predicate on the "entry_id" field.
func EntryIDGT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldEntryID, v))
}

// EntryIDGTE applies the GTE predicate on the "entry_id" field.
func EntryIDGTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldEntryID, v))
}

// EntryIDLT applies the LT predicate on the "entry_id" field.
func EntryIDLT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldEntryID, v))
}

// EntryIDLTE applies the LTE predicate on the "entry_id" field.
func EntryIDLTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldEntryID, v))
}

// EntryIDContains applies the Contains predicate on the "entry_id" field.
func EntryIDContains(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContains(FieldEntryID, v))
}

// EntryIDHasPrefix applies the HasPrefix predicate on the "entry_id" field.
func EntryIDHasPrefix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasPrefix(FieldEntryID, v))
}

// EntryIDHasSuffix applies the HasSuffix predicate on the "entry_id" field.
func EntryIDHasSuffix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasSuffix(FieldEntryID, v))
}

// EntryIDEqualFold applies the EqualFold predicate on the "entry_id" field.
func EntryIDEqualFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEqualFold(FieldEntryID, v))
}

// EntryIDContainsFold applies the ContainsFold predicate on the "entry_id" field.
func EntryIDContainsFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContainsFold(FieldEntryID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContainsFold(FieldName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldScore, v))
}

// TimeUsedEQ applies the EQ predicate on the "time_used" field.
func TimeUsedEQ(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldTimeUsed, v))
}

// TimeUsedNEQ applies the NEQ predicate on the "time_used" field.
func TimeUsedNEQ(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldTimeUsed, v))
}

// TimeUsedIn applies the In predicate on the "time_used" field.
func TimeUsedIn(vs ...int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldTimeUsed, vs...))
}

// TimeUsedNotIn applies the NotIn predicate on the "time_used" field.
func TimeUsedNotIn(vs ...int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldTimeUsed, vs...))
}

// TimeUsedGT applies the GT predicate on the "time_used" field.
func TimeUsedGT(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldTimeUsed, v))
}

// TimeUsedGTE applies the GTE predicate on the "time_used" field.
func TimeUsedGTE(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldTimeUsed, v))
}

// TimeUsedLT applies the LT predicate on the "time_used" field.
func TimeUsedLT(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldTimeUsed, v))
}

// TimeUsedLTE applies the LTE predicate on the "time_used" field.
func TimeUsedLTE(v int) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldTimeUsed, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContainsFold(FieldDifficulty, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldContainsFold(FieldMode, v))
}

// TablesIsNil applies the IsNil predicate on the "tables" field.
func TablesIsNil() predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldIsNull(FieldTables))
}

// TablesNotNil applies the NotNil predicate on the "tables" field.
func TablesNotNil() predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNotNull(FieldTables))
}

// PerfectEQ applies the EQ predicate on the "perfect" field.
func PerfectEQ(v bool) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldEQ(FieldPerfect, v))
}

// PerfectNEQ applies the NEQ predicate on the "perfect" field.
func PerfectNEQ(v bool) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.FieldNEQ(FieldPerfect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreEntry) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreEntry) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreEntry) predicate.ScoreEntry {
	return predicate.ScoreEntry(sql.NotPredicates(p))
}
