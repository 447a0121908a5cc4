package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ychsiao/tablerush/ent"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

// ScoreRow is one leaderboard entry as seen by callers of the store.
type ScoreRow struct {
	EntryID    string
	Name       string
	Score      int
	TimeUsed   int
	Difficulty string
	Mode       string
	Tables     []int
	Perfect    bool
	Sequence   int64
	Timestamp  time.Time
}

// ScoreFilter narrows queries to one board bucket. Empty fields match
// everything.
type ScoreFilter struct {
	Difficulty string
	Mode       string
}

// ScoreRepo manages leaderboard entries.
type ScoreRepo interface {
	// Save stores a new entry. A missing EntryID is filled with a fresh
	// UUID; Sequence and Timestamp are assigned by the store.
	Save(ctx context.Context, row *ScoreRow) error

	// Top returns up to limit entries in the filtered bucket ordered by
	// score descending, ties broken by time used ascending.
	Top(ctx context.Context, f ScoreFilter, limit int) ([]ScoreRow, error)

	// SearchByName returns up to limit entries whose name contains the
	// query (case-insensitive), newest first. An empty query returns the
	// most recent entries unfiltered.
	SearchByName(ctx context.Context, query string, f ScoreFilter, limit int) ([]ScoreRow, error)

	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)

	// DeleteAll removes every entry and returns how many were deleted.
	DeleteAll(ctx context.Context) (int, error)
}

type scoreRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *scoreRepo) Save(ctx context.Context, row *ScoreRow) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if row.EntryID == "" {
		row.EntryID = uuid.NewString()
	}

	builder := r.client.ScoreEntry.Create().
		SetSequence(seqNum).
		SetEntryID(row.EntryID).
		SetName(row.Name).
		SetScore(row.Score).
		SetTimeUsed(row.TimeUsed).
		SetDifficulty(row.Difficulty).
		SetMode(row.Mode).
		SetPerfect(row.Perfect)
	if len(row.Tables) > 0 {
		builder = builder.SetTables(row.Tables)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save score entry: %w", err)
	}

	row.Sequence = saved.Sequence
	row.Timestamp = saved.Timestamp
	return nil
}

func (r *scoreRepo) Top(ctx context.Context, f ScoreFilter, limit int) ([]ScoreRow, error) {
	q := applyFilter(r.client.ScoreEntry.Query(), f).
		Order(
			ent.Desc(scoreentry.FieldScore),
			ent.Asc(scoreentry.FieldTimeUsed),
			ent.Asc(scoreentry.FieldSequence),
		)
	if limit > 0 {
		q = q.Limit(limit)
	}
	entries, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	return toScoreRows(entries), nil
}

func (r *scoreRepo) SearchByName(ctx context.Context, query string, f ScoreFilter, limit int) ([]ScoreRow, error) {
	q := applyFilter(r.client.ScoreEntry.Query(), f)
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		q = q.Where(scoreentry.NameContainsFold(trimmed))
	}
	q = q.Order(ent.Desc(scoreentry.FieldTimestamp), ent.Desc(scoreentry.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	entries, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search scores by name: %w", err)
	}
	return toScoreRows(entries), nil
}

func (r *scoreRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.ScoreEntry.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count score entries: %w", err)
	}
	return n, nil
}

func (r *scoreRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.ScoreEntry.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete score entries: %w", err)
	}
	return n, nil
}

func applyFilter(q *ent.ScoreEntryQuery, f ScoreFilter) *ent.ScoreEntryQuery {
	if f.Difficulty != "" {
		q = q.Where(scoreentry.Difficulty(f.Difficulty))
	}
	if f.Mode != "" {
		q = q.Where(scoreentry.Mode(f.Mode))
	}
	return q
}

func toScoreRows(entries []*ent.ScoreEntry) []ScoreRow {
	rows := make([]ScoreRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ScoreRow{
			EntryID:    e.EntryID,
			Name:       e.Name,
			Score:      e.Score,
			TimeUsed:   e.TimeUsed,
			Difficulty: e.Difficulty,
			Mode:       e.Mode,
			Tables:     e.Tables,
			Perfect:    e.Perfect,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		})
	}
	return rows
}
