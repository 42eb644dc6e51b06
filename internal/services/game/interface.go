package game

import "context"

// Service defines the interface for trivia game operations
type Service interface {
	// StartGame validates a start request, registers the session for its
	// channel, and launches the round loop
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// StopGame flags a channel's running game to stop
	StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error)

	// SubmitGuess feeds a participant's message into the channel's active round
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)
}
