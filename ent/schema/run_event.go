package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent records one finished game run, submitted to the board or not.
// It is the append-only history behind the stats command.
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying this run"),
		field.String("difficulty").
			NotEmpty(),
		field.String("mode").
			Default("basic"),
		field.JSON("tables", []int{}).
			Optional().
			Comment("Multiplication tables enabled for the run"),
		field.Int("score").
			NonNegative(),
		field.Int("attempts").
			NonNegative().
			Comment("Judged or timed-out questions"),
		field.Int("time_used").
			NonNegative().
			Comment("Seconds of play consumed"),
		field.Bool("perfect").
			Default(false),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
		index.Fields("score"),
	}
}
