package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEntry is one submitted leaderboard result.
type ScoreEntry struct {
	ent.Schema
}

func (ScoreEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("entry_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying this entry"),
		field.String("name").
			NotEmpty().
			MinLen(2).
			MaxLen(20).
			Comment("Player name, 2-20 characters"),
		field.Int("score").
			NonNegative().
			Comment("Correct answers in the run"),
		field.Int("time_used").
			NonNegative().
			Comment("Seconds of play consumed"),
		field.String("difficulty").
			NotEmpty().
			Comment("Difficulty name the run was played at"),
		field.String("mode").
			Default("basic").
			Comment("basic or narrative"),
		field.JSON("tables", []int{}).
			Optional().
			Comment("Multiplication tables enabled for the run"),
		field.Bool("perfect").
			Default(false).
			Comment("Every attempt was correct"),
	}
}

func (ScoreEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Board ordering within a (difficulty, mode) bucket: score desc,
		// then time_used asc.
		index.Fields("difficulty", "mode", "score", "time_used"),
		index.Fields("name"),
	}
}
