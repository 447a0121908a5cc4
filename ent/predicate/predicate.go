// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// ScoreEntry is the predicate function for scoreentry builders.
type ScoreEntry func(*sql.Selector)
