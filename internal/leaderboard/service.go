// Package leaderboard is the submit/query gateway over stored scores.
// The game core never touches it directly: only game-over handling
// consumes it, and every call is treated as fallible without affecting
// session state.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ychsiao/tablerush/internal/store"
)

const (
	// BoardSize is how many entries a (difficulty, mode) board holds.
	BoardSize = 10

	// SearchLimit caps name search results.
	SearchLimit = 20

	MinNameLen = 2
	MaxNameLen = 20
)

var (
	// ErrNameLength rejects names outside the 2-20 character range after
	// trimming.
	ErrNameLength = fmt.Errorf("name must be %d-%d characters", MinNameLen, MaxNameLen)

	// ErrNegativeScore rejects submissions with impossible values.
	ErrNegativeScore = errors.New("score and time used must not be negative")
)

// Entry is one board row.
type Entry struct {
	ID         string
	Name       string
	Score      int
	TimeUsed   int
	Difficulty string
	Mode       string
	Tables     []int
	Timestamp  time.Time
}

// Submission is a candidate board entry for a finished run.
type Submission struct {
	Name       string
	Score      int
	TimeUsed   int
	Difficulty string
	Mode       string
	Tables     []int
}

// Service implements the gateway over a score repository.
type Service struct {
	scores store.ScoreRepo
}

// NewService creates a gateway backed by the given repository.
func NewService(scores store.ScoreRepo) *Service {
	return &Service{scores: scores}
}

// Submit validates and stores a board entry, returning its assigned ID.
// The name is trimmed before validation.
func (s *Service) Submit(ctx context.Context, sub Submission) (string, error) {
	name := strings.TrimSpace(sub.Name)
	if n := len([]rune(name)); n < MinNameLen || n > MaxNameLen {
		return "", ErrNameLength
	}
	if sub.Score < 0 || sub.TimeUsed < 0 {
		return "", ErrNegativeScore
	}

	row := store.ScoreRow{
		Name:       name,
		Score:      sub.Score,
		TimeUsed:   sub.TimeUsed,
		Difficulty: sub.Difficulty,
		Mode:       sub.Mode,
		Tables:     sub.Tables,
		Perfect:    true,
	}
	if err := s.scores.Save(ctx, &row); err != nil {
		return "", fmt.Errorf("submit entry: %w", err)
	}
	return row.EntryID, nil
}

// Top returns the board for one (difficulty, mode) bucket: up to
// BoardSize entries by score descending, ties broken by time used
// ascending.
func (s *Service) Top(ctx context.Context, difficulty, mode string) ([]Entry, error) {
	rows, err := s.scores.Top(ctx, store.ScoreFilter{Difficulty: difficulty, Mode: mode}, BoardSize)
	if err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}

// IsTop reports whether a (score, timeUsed) result would make the
// bucket's board: always true while the board has room, otherwise the
// candidate must strictly beat the current last entry. Ties lose.
func (s *Service) IsTop(ctx context.Context, difficulty, mode string, score, timeUsed int) (bool, error) {
	top, err := s.Top(ctx, difficulty, mode)
	if err != nil {
		return false, err
	}
	if len(top) < BoardSize {
		return true, nil
	}
	last := top[len(top)-1]
	return beats(score, timeUsed, last), nil
}

// Rank returns the 1-based position the result would take on the
// bucket's board, or 0 when it would not make the board.
func (s *Service) Rank(ctx context.Context, difficulty, mode string, score, timeUsed int) (int, error) {
	top, err := s.Top(ctx, difficulty, mode)
	if err != nil {
		return 0, err
	}
	for i, e := range top {
		if beats(score, timeUsed, e) {
			return i + 1, nil
		}
	}
	if len(top) < BoardSize {
		return len(top) + 1, nil
	}
	return 0, nil
}

// SearchByName returns up to SearchLimit entries matching the name
// query, newest first. Empty difficulty or mode widens the search; an
// empty query returns the most recent entries.
func (s *Service) SearchByName(ctx context.Context, query, difficulty, mode string) ([]Entry, error) {
	rows, err := s.scores.SearchByName(ctx, query,
		store.ScoreFilter{Difficulty: difficulty, Mode: mode}, SearchLimit)
	if err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}

// beats reports whether the candidate ranks strictly ahead of an
// existing entry under (score desc, timeUsed asc).
func beats(score, timeUsed int, e Entry) bool {
	if score != e.Score {
		return score > e.Score
	}
	return timeUsed < e.TimeUsed
}

func toEntries(rows []store.ScoreRow) []Entry {
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			ID:         r.EntryID,
			Name:       r.Name,
			Score:      r.Score,
			TimeUsed:   r.TimeUsed,
			Difficulty: r.Difficulty,
			Mode:       r.Mode,
			Tables:     r.Tables,
			Timestamp:  r.Timestamp,
		})
	}
	return entries
}
