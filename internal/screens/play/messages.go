package play

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// sessionTickMsg drives the one-second session countdown.
type sessionTickMsg time.Time

// questionTimerMsg fires when the current question's time is up. The
// token ties it to the timer arm that scheduled it; the session discards
// stale tokens, so superseded timers are harmless.
type questionTimerMsg struct {
	Token int
}

// runSavedMsg confirms the finished run was persisted.
type runSavedMsg struct {
	Err error
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return sessionTickMsg(t)
	})
}

// questionTimerCmd schedules the question-advance timer for the given
// token.
func questionTimerCmd(token int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return questionTimerMsg{Token: token}
	})
}
