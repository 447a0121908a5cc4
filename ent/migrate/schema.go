// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Default: "basic"},
		{Name: "tables", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "time_used", Type: field.TypeInt},
		{Name: "perfect", Type: field.TypeBool, Default: false},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1]},
			},
			{
				Name:    "runevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[2]},
			},
			{
				Name:    "runevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[4]},
			},
			{
				Name:    "runevent_score",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[7]},
			},
		},
	}
	// ScoreEntriesColumns holds the columns for the "score_entries" table.
	ScoreEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Size: 20},
		{Name: "score", Type: field.TypeInt},
		{Name: "time_used", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Default: "basic"},
		{Name: "tables", Type: field.TypeJSON, Nullable: true},
		{Name: "perfect", Type: field.TypeBool, Default: false},
	}
	// ScoreEntriesTable holds the schema information for the "score_entries" table.
	ScoreEntriesTable = &schema.Table{
		Name:       "score_entries",
		Columns:    ScoreEntriesColumns,
		PrimaryKey: []*schema.Column{ScoreEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoreentry_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScoreEntriesColumns[1]},
			},
			{
				Name:    "scoreentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScoreEntriesColumns[2]},
			},
			{
				Name:    "scoreentry_difficulty_mode_score_time_used",
				Unique:  false,
				Columns: []*schema.Column{ScoreEntriesColumns[7], ScoreEntriesColumns[8], ScoreEntriesColumns[5], ScoreEntriesColumns[6]},
			},
			{
				Name:    "scoreentry_name",
				Unique:  false,
				Columns: []*schema.Column{ScoreEntriesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RunEventsTable,
		ScoreEntriesTable,
	}
)

func init() {
}
