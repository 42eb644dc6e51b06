package messaging

import "context"

// Service is the interface for the messaging service. It turns game events
// into user-facing flavor text so the presenter doesn't repeat itself.
type Service interface {
	// GetGameStartMessage returns the kickoff announcement for a new game
	GetGameStartMessage(ctx context.Context, input *GetGameStartMessageInput) (*GetGameStartMessageOutput, error)

	// GetWinnerMessage returns a congratulation line for a round winner
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)

	// GetTimeoutMessage returns the reveal line for a round nobody got
	GetTimeoutMessage(ctx context.Context, input *GetTimeoutMessageInput) (*GetTimeoutMessageOutput, error)

	// GetNoScoresMessage returns the game-over line for a scoreless game
	GetNoScoresMessage(ctx context.Context, input *GetNoScoresMessageInput) (*GetNoScoresMessageOutput, error)
}
