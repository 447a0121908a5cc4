package game

import (
	"errors"
	"testing"
	"time"
)

func TestPresets(t *testing.T) {
	got := Presets()
	want := []struct {
		name     string
		limit    int
		interval time.Duration
	}{
		{"Easy", 120, 15 * time.Second},
		{"Normal", 90, 10 * time.Second},
		{"Hard", 60, 5 * time.Second},
	}
	if len(got) != len(want) {
		t.Fatalf("Presets() returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Name != w.name || got[i].TimeLimit != w.limit || got[i].QuestionInterval != w.interval {
			t.Errorf("preset %d = %+v, want %s %d %v", i, got[i], w.name, w.limit, w.interval)
		}
	}
}

func TestNewCustomDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		interval time.Duration
		wantErr  error
	}{
		{"valid", 60, 5 * time.Second, nil},
		{"interval equals limit", 10, 10 * time.Second, nil},
		{"zero limit", 0, 5 * time.Second, ErrNonPositiveTimeLimit},
		{"negative limit", -1, 5 * time.Second, ErrNonPositiveTimeLimit},
		{"zero interval", 60, 0, ErrNonPositiveInterval},
		{"interval exceeds limit", 10, 20 * time.Second, ErrIntervalExceedsLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewCustomDifficulty(tt.limit, tt.interval)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && (d.TimeLimit != tt.limit || d.QuestionInterval != tt.interval) {
				t.Errorf("got %+v, want limit %d interval %v", d, tt.limit, tt.interval)
			}
		})
	}
}
