package game

import "errors"

// Define errors
var (
	// User-facing rejections; reported immediately, never retried
	ErrGameAlreadyRunning = errors.New("a game is already running in this channel")
	ErrInvalidRoundCount  = errors.New("rounds must be between 1 and 50")
	ErrNoQuestionsInRange = errors.New("no questions found in that year range")
	ErrNoActiveGame       = errors.New("no game is currently running in this channel")

	// Constructor validation
	ErrNilConfig       = errors.New("config cannot be nil")
	ErrNilQuestionRepo = errors.New("question repository cannot be nil")
	ErrNilMatcher      = errors.New("matcher cannot be nil")
	ErrNilShuffler     = errors.New("shuffler cannot be nil")
	ErrNilPresenter    = errors.New("presenter cannot be nil")
)
