package leaderboard

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ychsiao/tablerush/internal/store"
)

// fakeScoreRepo is an in-memory store.ScoreRepo for gateway tests.
type fakeScoreRepo struct {
	rows []store.ScoreRow
	next int
}

func (f *fakeScoreRepo) Save(_ context.Context, row *store.ScoreRow) error {
	f.next++
	if row.EntryID == "" {
		row.EntryID = "entry-" + strconv.Itoa(f.next)
	}
	row.Sequence = int64(f.next)
	row.Timestamp = time.Unix(int64(f.next), 0).UTC()
	f.rows = append(f.rows, *row)
	return nil
}

func (f *fakeScoreRepo) Top(_ context.Context, filter store.ScoreFilter, limit int) ([]store.ScoreRow, error) {
	out := f.filtered(filter)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].TimeUsed != out[j].TimeUsed {
			return out[i].TimeUsed < out[j].TimeUsed
		}
		return out[i].Sequence < out[j].Sequence
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeScoreRepo) SearchByName(_ context.Context, query string, filter store.ScoreFilter, limit int) ([]store.ScoreRow, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []store.ScoreRow
	for _, r := range f.filtered(filter) {
		if q == "" || strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sequence > out[j].Sequence })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeScoreRepo) Count(context.Context) (int, error) { return len(f.rows), nil }

func (f *fakeScoreRepo) DeleteAll(context.Context) (int, error) {
	n := len(f.rows)
	f.rows = nil
	return n, nil
}

func (f *fakeScoreRepo) filtered(filter store.ScoreFilter) []store.ScoreRow {
	var out []store.ScoreRow
	for _, r := range f.rows {
		if filter.Difficulty != "" && r.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Mode != "" && r.Mode != filter.Mode {
			continue
		}
		out = append(out, r)
	}
	return out
}

func newTestService() (*Service, *fakeScoreRepo) {
	repo := &fakeScoreRepo{}
	return NewService(repo), repo
}

func seedBoard(t *testing.T, svc *Service, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		// Scores n..1, all at 60s.
		_, err := svc.Submit(ctx, Submission{
			Name:       "Player " + strconv.Itoa(i+1),
			Score:      n - i,
			TimeUsed:   60,
			Difficulty: "Hard",
			Mode:       "basic",
		})
		require.NoError(t, err)
	}
}

func TestSubmit_ValidatesName(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		wantErr error
	}{
		{"Jo", nil},
		{"  Jo  ", nil}, // trimmed before validation
		{"exactly twenty chars", nil},
		{"J", ErrNameLength},
		{"   ", ErrNameLength},
		{"", ErrNameLength},
		{"this name is far too long for it", ErrNameLength},
	}
	for _, tt := range tests {
		_, err := svc.Submit(ctx, Submission{
			Name: tt.name, Score: 5, TimeUsed: 60,
			Difficulty: "Easy", Mode: "basic",
		})
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "name %q", tt.name)
		} else {
			assert.NoError(t, err, "name %q", tt.name)
		}
	}

	// Rejected submissions left nothing behind.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSubmit_RejectsNegativeValues(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, Submission{Name: "Jo", Score: -1, TimeUsed: 60, Difficulty: "Easy", Mode: "basic"})
	assert.ErrorIs(t, err, ErrNegativeScore)
	_, err = svc.Submit(ctx, Submission{Name: "Jo", Score: 1, TimeUsed: -1, Difficulty: "Easy", Mode: "basic"})
	assert.ErrorIs(t, err, ErrNegativeScore)
}

func TestSubmit_StoresTrimmedNameAndTables(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id, err := svc.Submit(ctx, Submission{
		Name: "  Robin  ", Score: 9, TimeUsed: 45,
		Difficulty: "Hard", Mode: "narrative", Tables: []int{2, 7},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.rows, 1)
	row := repo.rows[0]
	assert.Equal(t, "Robin", row.Name)
	assert.Equal(t, []int{2, 7}, row.Tables)
	assert.True(t, row.Perfect)
	assert.Equal(t, id, row.EntryID)
}

func TestTop_OrderingAndLimit(t *testing.T) {
	svc, _ := newTestService()
	seedBoard(t, svc, 12)
	ctx := context.Background()

	top, err := svc.Top(ctx, "Hard", "basic")
	require.NoError(t, err)
	require.Len(t, top, BoardSize)
	assert.Equal(t, 12, top[0].Score)
	assert.Equal(t, 3, top[BoardSize-1].Score)

	// Other buckets stay empty.
	other, err := svc.Top(ctx, "Easy", "basic")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTop_TieBrokenByTimeUsed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, sub := range []Submission{
		{Name: "Slow", Score: 10, TimeUsed: 90, Difficulty: "Normal", Mode: "basic"},
		{Name: "Fast", Score: 10, TimeUsed: 40, Difficulty: "Normal", Mode: "basic"},
	} {
		_, err := svc.Submit(ctx, sub)
		require.NoError(t, err)
	}

	top, err := svc.Top(ctx, "Normal", "basic")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Fast", top[0].Name)
}

func TestIsTop(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Room on the board: anything qualifies.
	ok, err := svc.IsTop(ctx, "Hard", "basic", 0, 999)
	require.NoError(t, err)
	assert.True(t, ok)

	seedBoard(t, svc, BoardSize) // scores 10..1, all 60s

	// Strictly better score than the 10th (score 1).
	ok, err = svc.IsTop(ctx, "Hard", "basic", 2, 200)
	require.NoError(t, err)
	assert.True(t, ok)

	// Same score, faster time beats the 10th.
	ok, err = svc.IsTop(ctx, "Hard", "basic", 1, 30)
	require.NoError(t, err)
	assert.True(t, ok)

	// Exact tie with the 10th loses.
	ok, err = svc.IsTop(ctx, "Hard", "basic", 1, 60)
	require.NoError(t, err)
	assert.False(t, ok)

	// Worse loses.
	ok, err = svc.IsTop(ctx, "Hard", "basic", 0, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	// A full Hard board doesn't block the Easy board.
	ok, err = svc.IsTop(ctx, "Easy", "basic", 0, 999)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRank(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Empty board: first place.
	rank, err := svc.Rank(ctx, "Hard", "basic", 5, 60)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	seedBoard(t, svc, BoardSize) // scores 10..1, all 60s

	rank, err = svc.Rank(ctx, "Hard", "basic", 11, 60)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = svc.Rank(ctx, "Hard", "basic", 5, 30)
	require.NoError(t, err)
	assert.Equal(t, 6, rank, "ties on score rank ahead of slower entries")

	rank, err = svc.Rank(ctx, "Hard", "basic", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, rank, "off-board result ranks 0")
}

func TestSearchByName(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, name := range []string{"Morgan", "Mo", "Casey"} {
		_, err := svc.Submit(ctx, Submission{
			Name: name, Score: 3, TimeUsed: 60, Difficulty: "Easy", Mode: "basic",
		})
		require.NoError(t, err)
	}

	got, err := svc.SearchByName(ctx, "mo", "", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, "Mo", got[0].Name)
	assert.Equal(t, "Morgan", got[1].Name)

	all, err := svc.SearchByName(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSearchByName_RespectsLimit(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < SearchLimit+5; i++ {
		_, err := svc.Submit(ctx, Submission{
			Name: "Same Name", Score: 1, TimeUsed: 60, Difficulty: "Easy", Mode: "basic",
		})
		require.NoError(t, err)
	}

	got, err := svc.SearchByName(ctx, "same", "", "")
	require.NoError(t, err)
	assert.Len(t, got, SearchLimit)
}
