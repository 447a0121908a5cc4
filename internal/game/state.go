package game

// Mode selects the kind of questions served during a session.
type Mode string

const (
	// ModeBasic serves bare multiplication facts; the player types the
	// product.
	ModeBasic Mode = "basic"

	// ModeNarrative serves word problems; the player types the whole
	// equation as digits (factor, factor, product).
	ModeNarrative Mode = "narrative"
)

// Phase is the top-level state of a session.
type Phase int

const (
	// PhaseSelecting is the pre-game state: picking difficulty, tables
	// and mode.
	PhaseSelecting Phase = iota

	// PhasePlaying is the active quiz, including the penalty sub-state.
	PhasePlaying

	// PhaseGameOver is the terminal state until restart.
	PhaseGameOver
)

// SubmitResult reports what a SubmitAnswer call did.
type SubmitResult struct {
	// Submitted is false when the call was a guarded no-op (no question,
	// empty input, or penalty active).
	Submitted bool

	// Correct is meaningful only when Submitted is true.
	Correct bool
}
