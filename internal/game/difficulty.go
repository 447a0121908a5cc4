package game

import (
	"errors"
	"time"
)

// Difficulty fixes the session clock and the per-question advance
// interval. Immutable once a session starts.
type Difficulty struct {
	Name string

	// TimeLimit is the total session length in seconds.
	TimeLimit int

	// QuestionInterval is how long a question stays on screen before it
	// counts as missed and the next one is served.
	QuestionInterval time.Duration
}

// Preset difficulties, matching the classic 120/90/60 second ladders.
var (
	Easy   = Difficulty{Name: "Easy", TimeLimit: 120, QuestionInterval: 15 * time.Second}
	Normal = Difficulty{Name: "Normal", TimeLimit: 90, QuestionInterval: 10 * time.Second}
	Hard   = Difficulty{Name: "Hard", TimeLimit: 60, QuestionInterval: 5 * time.Second}
)

// Presets returns the selectable preset difficulties in display order.
func Presets() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

var (
	ErrNonPositiveTimeLimit = errors.New("time limit must be positive")
	ErrNonPositiveInterval  = errors.New("question interval must be positive")
	ErrIntervalExceedsLimit = errors.New("question interval must not exceed the time limit")
)

// NewCustomDifficulty validates and builds a user-supplied difficulty.
func NewCustomDifficulty(timeLimitSecs int, interval time.Duration) (Difficulty, error) {
	if timeLimitSecs <= 0 {
		return Difficulty{}, ErrNonPositiveTimeLimit
	}
	if interval <= 0 {
		return Difficulty{}, ErrNonPositiveInterval
	}
	if interval > time.Duration(timeLimitSecs)*time.Second {
		return Difficulty{}, ErrIntervalExceedsLimit
	}
	return Difficulty{
		Name:             "Custom",
		TimeLimit:        timeLimitSecs,
		QuestionInterval: interval,
	}, nil
}
