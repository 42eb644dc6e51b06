package models

// RoundOutcome describes how a single round resolved. Exactly one of the
// winner fields, TimedOut, or Cancelled is meaningful per round.
type RoundOutcome struct {
	// WinnerID is the Discord user ID of the first correct guesser,
	// or empty if nobody got it
	WinnerID string

	// WinnerName is the display name of the winner
	WinnerName string

	// TimedOut is set when the round's full time budget elapsed with no winner
	TimedOut bool

	// Cancelled is set when the game was stopped mid-round
	Cancelled bool
}
