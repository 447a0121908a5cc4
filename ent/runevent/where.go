// Code generated by ent, DO NOT EDIT.

package runevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ychsiao/tablerush/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldRunID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldMode, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldScore, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldAttempts, v))
}

// TimeUsed applies equality check predicate on the "time_used" field. It's identical to TimeUsedEQ.
func TimeUsed(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTimeUsed, v))
}

// Perfect applies equality check predicate on the "perfect" field. It's identical to PerfectEQ.
func Perfect(v bool) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldPerfect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldRunID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldMode, v))
}

// TablesIsNil applies the IsNil predicate on the "tables" field.
func TablesIsNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIsNull(FieldTables))
}

// TablesNotNil applies the NotNil predicate on the "tables" field.
func TablesNotNil() predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotNull(FieldTables))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldScore, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldAttempts, v))
}

// TimeUsedEQ applies the EQ predicate on the "time_used" field.
func TimeUsedEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTimeUsed, v))
}

// TimeUsedNEQ applies the NEQ predicate on the "time_used" field.
func TimeUsedNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldTimeUsed, v))
}

// TimeUsedIn applies the In predicate on the "time_used" field.
func TimeUsedIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldTimeUsed, vs...))
}

// TimeUsedNotIn applies the NotIn predicate on the "time_used" field.
func TimeUsedNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldTimeUsed, vs...))
}

// TimeUsedGT applies the GT predicate on the "time_used" field.
func TimeUsedGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldTimeUsed, v))
}

// TimeUsedGTE applies the GTE predicate on the "time_used" field.
func TimeUsedGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldTimeUsed, v))
}

// TimeUsedLT applies the LT predicate on the "time_used" field.
func TimeUsedLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldTimeUsed, v))
}

// TimeUsedLTE applies the LTE predicate on the "time_used" field.
func TimeUsedLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldTimeUsed, v))
}

// PerfectEQ applies the EQ predicate on the "perfect" field.
func PerfectEQ(v bool) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldPerfect, v))
}

// PerfectNEQ applies the NEQ predicate on the "perfect" field.
func PerfectNEQ(v bool) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldPerfect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.NotPredicates(p))
}
