package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestScoreSaveFillsIdentity(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	row := &ScoreRow{
		Name:       "Mina",
		Score:      12,
		TimeUsed:   88,
		Difficulty: "Normal",
		Mode:       "basic",
	}
	if err := repo.Save(ctx, row); err != nil {
		t.Fatalf("save: %v", err)
	}
	if row.EntryID == "" {
		t.Error("EntryID not assigned")
	}
	if row.Sequence == 0 {
		t.Error("Sequence not assigned")
	}
	if row.Timestamp.IsZero() {
		t.Error("Timestamp not assigned")
	}
}

func TestScoreTopOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	seed := []ScoreRow{
		{Name: "Ada", Score: 10, TimeUsed: 90, Difficulty: "Normal"},
		{Name: "Ben", Score: 15, TimeUsed: 90, Difficulty: "Normal"},
		{Name: "Cas", Score: 15, TimeUsed: 60, Difficulty: "Hard"},
		{Name: "Dee", Score: 3, TimeUsed: 120, Difficulty: "Easy"},
	}
	for i := range seed {
		if err := repo.Save(ctx, &seed[i]); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	top, err := repo.Top(ctx, ScoreFilter{}, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	want := []string{"Cas", "Ben", "Ada", "Dee"}
	if len(top) != len(want) {
		t.Fatalf("got %d entries, want %d", len(top), len(want))
	}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d].Name = %q, want %q", i, top[i].Name, name)
		}
	}
}

func TestScoreTopLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		row := ScoreRow{Name: "Player", Score: i, TimeUsed: 60, Difficulty: "Hard"}
		if err := repo.Save(ctx, &row); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	top, err := repo.Top(ctx, ScoreFilter{}, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("got %d entries, want 10", len(top))
	}
	if top[0].Score != 11 {
		t.Errorf("top[0].Score = %d, want 11", top[0].Score)
	}
}

func TestScoreSearchByName(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	for _, name := range []string{"Anna", "Annabel", "Bruno"} {
		row := ScoreRow{Name: name, Score: 5, TimeUsed: 60, Difficulty: "Easy"}
		if err := repo.Save(ctx, &row); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	got, err := repo.SearchByName(ctx, "anna", ScoreFilter{}, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("search %q returned %d entries, want 2", "anna", len(got))
	}
	// Newest first.
	if got[0].Name != "Annabel" || got[1].Name != "Anna" {
		t.Errorf("order = [%s %s], want [Annabel Anna]", got[0].Name, got[1].Name)
	}

	// Empty query returns recent entries unfiltered.
	all, err := repo.SearchByName(ctx, "  ", ScoreFilter{}, 20)
	if err != nil {
		t.Fatalf("search empty: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("empty search returned %d entries, want 3", len(all))
	}
	if all[0].Name != "Bruno" {
		t.Errorf("empty search newest = %q, want Bruno", all[0].Name)
	}
}

func TestScoreTopBucketFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	seed := []ScoreRow{
		{Name: "Eve", Score: 20, TimeUsed: 60, Difficulty: "Hard", Mode: "basic"},
		{Name: "Fay", Score: 8, TimeUsed: 90, Difficulty: "Normal", Mode: "basic"},
		{Name: "Gus", Score: 9, TimeUsed: 90, Difficulty: "Normal", Mode: "narrative"},
	}
	for i := range seed {
		if err := repo.Save(ctx, &seed[i]); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	top, err := repo.Top(ctx, ScoreFilter{Difficulty: "Normal", Mode: "basic"}, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 || top[0].Name != "Fay" {
		t.Errorf("bucket query returned %v, want just Fay", top)
	}
}

func TestScoreDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScoreRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		row := ScoreRow{Name: "Gone", Score: i, TimeUsed: 60, Difficulty: "Easy"}
		if err := repo.Save(ctx, &row); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted %d, want 3", n)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d after delete, want 0", count)
	}
}

func TestRunAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	runs := []RunRow{
		{Difficulty: "Easy", Mode: "basic", Tables: []int{2, 3}, Score: 4, Attempts: 6, TimeUsed: 120},
		{Difficulty: "Hard", Mode: "narrative", Score: 9, Attempts: 9, TimeUsed: 60, Perfect: true},
	}
	for i := range runs {
		if err := repo.Append(ctx, &runs[i]); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if runs[i].RunID == "" {
			t.Errorf("run %d: RunID not assigned", i)
		}
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d runs, want 2", len(recent))
	}
	if recent[0].Difficulty != "Hard" {
		t.Errorf("newest run difficulty = %q, want Hard", recent[0].Difficulty)
	}
	if len(recent[1].Tables) != 2 {
		t.Errorf("tables not round-tripped: %v", recent[1].Tables)
	}
}

func TestRunStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	runs := []RunRow{
		{Difficulty: "Easy", Mode: "basic", Score: 4, Attempts: 8, TimeUsed: 120},
		{Difficulty: "Normal", Mode: "basic", Score: 6, Attempts: 6, TimeUsed: 90, Perfect: true},
		{Difficulty: "Hard", Mode: "narrative", Score: 2, Attempts: 6, TimeUsed: 60},
	}
	for i := range runs {
		if err := repo.Append(ctx, &runs[i]); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.Attempts != 20 || stats.Correct != 12 {
		t.Errorf("Attempts/Correct = %d/%d, want 20/12", stats.Attempts, stats.Correct)
	}
	if stats.BestScore != 6 {
		t.Errorf("BestScore = %d, want 6", stats.BestScore)
	}
	if stats.PerfectRuns != 1 {
		t.Errorf("PerfectRuns = %d, want 1", stats.PerfectRuns)
	}
	if got := stats.Accuracy(); got != 0.6 {
		t.Errorf("Accuracy = %v, want 0.6", got)
	}
}

func TestRunStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.RunRepo().Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Runs != 0 || stats.Accuracy() != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestSequenceSharedAcrossRepos(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	score := ScoreRow{Name: "Uno", Score: 1, TimeUsed: 60, Difficulty: "Easy"}
	if err := s.ScoreRepo().Save(ctx, &score); err != nil {
		t.Fatalf("save score: %v", err)
	}
	run := RunRow{Difficulty: "Easy", Mode: "basic", Score: 1, Attempts: 1, TimeUsed: 60}
	if err := s.RunRepo().Append(ctx, &run); err != nil {
		t.Fatalf("append run: %v", err)
	}

	if run.Sequence <= score.Sequence {
		t.Errorf("run sequence %d not after score sequence %d", run.Sequence, score.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "tablerush.db")
	t.Setenv("TABLERUSH_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}

	info, err := os.Stat(filepath.Dir(want))
	if err != nil {
		t.Fatalf("parent dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", filepath.Dir(want))
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"score_entries", "run_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}
