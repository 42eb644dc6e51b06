package game

//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/tanktrivia/internal/services/game Presenter

import "context"

// Presenter is the presentation sink for game events. Implementations
// deliver announcements to the chat platform; the game core never touches
// the transport directly.
type Presenter interface {
	// AnnounceRound presents a question and returns an opaque message
	// reference used for later countdown edits
	AnnounceRound(ctx context.Context, input *AnnounceRoundInput) (*AnnounceRoundOutput, error)

	// UpdateCountdown refreshes the remaining-seconds display on a round
	// message. Best-effort: callers discard its error.
	UpdateCountdown(ctx context.Context, input *UpdateCountdownInput) error

	// AnnounceWinner reports the round's first correct guesser
	AnnounceWinner(ctx context.Context, input *AnnounceWinnerInput) error

	// AnnounceTimeout reveals the accepted answers for an unsolved round
	AnnounceTimeout(ctx context.Context, input *AnnounceTimeoutInput) error

	// AnnounceStopped reports that the game was cancelled
	AnnounceStopped(ctx context.Context, input *AnnounceStoppedInput) error

	// AnnounceEarlyEnd reports that the question pool ran dry before the
	// requested round count
	AnnounceEarlyEnd(ctx context.Context, input *AnnounceEarlyEndInput) error

	// AnnounceStandings reports the final leaderboard
	AnnounceStandings(ctx context.Context, input *AnnounceStandingsInput) error
}
