// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ychsiao/tablerush/ent/runevent"
	"github.com/ychsiao/tablerush/ent/schema"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescRunID is the schema descriptor for run_id field.
	runeventDescRunID := runeventFields[0].Descriptor()
	// runevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	runevent.RunIDValidator = runeventDescRunID.Validators[0].(func(string) error)
	// runeventDescDifficulty is the schema descriptor for difficulty field.
	runeventDescDifficulty := runeventFields[1].Descriptor()
	// runevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	runevent.DifficultyValidator = runeventDescDifficulty.Validators[0].(func(string) error)
	// runeventDescMode is the schema descriptor for mode field.
	runeventDescMode := runeventFields[2].Descriptor()
	// runevent.DefaultMode holds the default value on creation for the mode field.
	runevent.DefaultMode = runeventDescMode.Default.(string)
	// runeventDescScore is the schema descriptor for score field.
	runeventDescScore := runeventFields[4].Descriptor()
	// runevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	runevent.ScoreValidator = runeventDescScore.Validators[0].(func(int) error)
	// runeventDescAttempts is the schema descriptor for attempts field.
	runeventDescAttempts := runeventFields[5].Descriptor()
	// runevent.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	runevent.AttemptsValidator = runeventDescAttempts.Validators[0].(func(int) error)
	// runeventDescTimeUsed is the schema descriptor for time_used field.
	runeventDescTimeUsed := runeventFields[6].Descriptor()
	// runevent.TimeUsedValidator is a validator for the "time_used" field. It is called by the builders before save.
	runevent.TimeUsedValidator = runeventDescTimeUsed.Validators[0].(func(int) error)
	// runeventDescPerfect is the schema descriptor for perfect field.
	runeventDescPerfect := runeventFields[7].Descriptor()
	// runevent.DefaultPerfect holds the default value on creation for the perfect field.
	runevent.DefaultPerfect = runeventDescPerfect.Default.(bool)
	scoreentryMixin := schema.ScoreEntry{}.Mixin()
	scoreentryMixinFields0 := scoreentryMixin[0].Fields()
	_ = scoreentryMixinFields0
	scoreentryFields := schema.ScoreEntry{}.Fields()
	_ = scoreentryFields
	// scoreentryDescTimestamp is the schema descriptor for timestamp field.
	scoreentryDescTimestamp := scoreentryMixinFields0[1].Descriptor()
	// scoreentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	scoreentry.DefaultTimestamp = scoreentryDescTimestamp.Default.(func() time.Time)
	// scoreentryDescEntryID is the schema descriptor for entry_id field.
	scoreentryDescEntryID := scoreentryFields[0].Descriptor()
	// scoreentry.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	scoreentry.EntryIDValidator = scoreentryDescEntryID.Validators[0].(func(string) error)
	// scoreentryDescName is the schema descriptor for name field.
	scoreentryDescName := scoreentryFields[1].Descriptor()
	// scoreentry.NameValidator is a validator for the "name" field. It is called by the builders before save.
	scoreentry.NameValidator = func() func(string) error {
		validators := scoreentryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scoreentryDescScore is the schema descriptor for score field.
	scoreentryDescScore := scoreentryFields[2].Descriptor()
	// scoreentry.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	scoreentry.ScoreValidator = scoreentryDescScore.Validators[0].(func(int) error)
	// scoreentryDescTimeUsed is the schema descriptor for time_used field.
	scoreentryDescTimeUsed := scoreentryFields[3].Descriptor()
	// scoreentry.TimeUsedValidator is a validator for the "time_used" field. It is called by the builders before save.
	scoreentry.TimeUsedValidator = scoreentryDescTimeUsed.Validators[0].(func(int) error)
	// scoreentryDescDifficulty is the schema descriptor for difficulty field.
	scoreentryDescDifficulty := scoreentryFields[4].Descriptor()
	// scoreentry.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	scoreentry.DifficultyValidator = scoreentryDescDifficulty.Validators[0].(func(string) error)
	// scoreentryDescMode is the schema descriptor for mode field.
	scoreentryDescMode := scoreentryFields[5].Descriptor()
	// scoreentry.DefaultMode holds the default value on creation for the mode field.
	scoreentry.DefaultMode = scoreentryDescMode.Default.(string)
	// scoreentryDescPerfect is the schema descriptor for perfect field.
	scoreentryDescPerfect := scoreentryFields[7].Descriptor()
	// scoreentry.DefaultPerfect holds the default value on creation for the perfect field.
	scoreentry.DefaultPerfect = scoreentryDescPerfect.Default.(bool)
}
