package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ychsiao/tablerush/ent"
	"github.com/ychsiao/tablerush/ent/runevent"
)

// RunRow is one finished game run in the append-only history.
type RunRow struct {
	RunID      string
	Difficulty string
	Mode       string
	Tables     []int
	Score      int
	Attempts   int
	TimeUsed   int
	Perfect    bool
	Sequence   int64
	Timestamp  time.Time
}

// RunStats aggregates the run history for the stats command.
type RunStats struct {
	Runs        int
	Attempts    int
	Correct     int
	BestScore   int
	PerfectRuns int
}

// Accuracy returns the overall fraction of correct attempts, 0 when no
// attempts were recorded.
func (s RunStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// RunRepo manages the run history.
type RunRepo interface {
	// Append records a finished run. A missing RunID is filled with a
	// fresh UUID; Sequence and Timestamp are assigned by the store.
	Append(ctx context.Context, row *RunRow) error

	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]RunRow, error)

	// Stats aggregates across the whole history.
	Stats(ctx context.Context) (RunStats, error)

	// DeleteAll removes every run and returns how many were deleted.
	DeleteAll(ctx context.Context) (int, error)
}

type runRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *runRepo) Append(ctx context.Context, row *RunRow) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if row.RunID == "" {
		row.RunID = uuid.NewString()
	}

	builder := r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(row.RunID).
		SetDifficulty(row.Difficulty).
		SetMode(row.Mode).
		SetScore(row.Score).
		SetAttempts(row.Attempts).
		SetTimeUsed(row.TimeUsed).
		SetPerfect(row.Perfect)
	if len(row.Tables) > 0 {
		builder = builder.SetTables(row.Tables)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}

	row.Sequence = saved.Sequence
	row.Timestamp = saved.Timestamp
	return nil
}

func (r *runRepo) Recent(ctx context.Context, limit int) ([]RunRow, error) {
	q := r.client.RunEvent.Query().
		Order(ent.Desc(runevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}

	rows := make([]RunRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, RunRow{
			RunID:      e.RunID,
			Difficulty: e.Difficulty,
			Mode:       e.Mode,
			Tables:     e.Tables,
			Score:      e.Score,
			Attempts:   e.Attempts,
			TimeUsed:   e.TimeUsed,
			Perfect:    e.Perfect,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		})
	}
	return rows, nil
}

func (r *runRepo) Stats(ctx context.Context) (RunStats, error) {
	events, err := r.client.RunEvent.Query().All(ctx)
	if err != nil {
		return RunStats{}, fmt.Errorf("query run stats: %w", err)
	}

	var stats RunStats
	for _, e := range events {
		stats.Runs++
		stats.Attempts += e.Attempts
		stats.Correct += e.Score
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
		if e.Perfect {
			stats.PerfectRuns++
		}
	}
	return stats, nil
}

func (r *runRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.RunEvent.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete run events: %w", err)
	}
	return n, nil
}
