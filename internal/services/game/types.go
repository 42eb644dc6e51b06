package game

import (
	"time"

	"github.com/KirkDiggler/tanktrivia/internal/common/clock"
	"github.com/KirkDiggler/tanktrivia/internal/common/uuid"
	"github.com/KirkDiggler/tanktrivia/internal/models"
	questionRepo "github.com/KirkDiggler/tanktrivia/internal/repositories/question"
)

// Matcher decides whether a guess counts as correct for a question
type Matcher interface {
	Matches(guess string, aliases []string) bool
}

// Shuffler permutes a question pool before a game begins
type Shuffler interface {
	Shuffle(pool []*models.Question)
}

// Config holds configuration for the game service
type Config struct {
	// RoundTicks is the per-round time budget in ticks (default 20)
	RoundTicks int

	// CountdownTicks is how many final ticks show a countdown (default 5)
	CountdownTicks int

	// TickInterval is the real duration of one tick (default one second).
	// Tests shrink it to run full games in milliseconds.
	TickInterval time.Duration

	// MaxRounds caps the requested round count (default 50)
	MaxRounds int

	// GuessBuffer is the per-game guess channel capacity (default 32)
	GuessBuffer int

	// StopToken is the chat message that cancels a running game (default "!stop")
	StopToken string

	// Repository dependencies
	QuestionRepo questionRepo.Repository

	// Service dependencies
	Matcher       Matcher
	Shuffler      Shuffler
	Presenter     Presenter
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartGameInput contains parameters for starting a new game
type StartGameInput struct {
	// ChannelID is the Discord channel the game will run in
	ChannelID string

	// PlayerID is the Discord user ID of the player starting the game
	PlayerID string

	// PlayerName is the display name of the player starting the game
	PlayerName string

	// StartYear and EndYear bound the production years of eligible questions
	StartYear int
	EndYear   int

	// Rounds is the requested round count (1-50)
	Rounds int
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string

	// PoolSize is how many questions matched the year range
	PoolSize int

	// Rounds is the accepted round count
	Rounds int

	// EarlyEndPossible is set when fewer questions than rounds are
	// available, so the game may end before RoundsTotal
	EarlyEndPossible bool

	// Done closes when the round loop has exited and the channel is free
	// to host a new game
	Done <-chan struct{}
}

// StopGameInput contains parameters for stopping a game
type StopGameInput struct {
	// ChannelID is the Discord channel whose game should stop
	ChannelID string
}

// StopGameOutput contains the result of stopping a game
type StopGameOutput struct {
	// Stopped indicates the running game was flagged to stop
	Stopped bool
}

// SubmitGuessInput contains one participant message for guess evaluation
type SubmitGuessInput struct {
	// ChannelID is the Discord channel the message was sent in
	ChannelID string

	// PlayerID is the Discord user ID of the author
	PlayerID string

	// PlayerName is the display name of the author
	PlayerName string

	// Content is the raw message text
	Content string
}

// SubmitGuessOutput contains the result of submitting a guess
type SubmitGuessOutput struct {
	// Accepted indicates the guess was handed to an active round.
	// False when the channel has no running game.
	Accepted bool
}

// AnnounceRoundInput describes a question presentation
type AnnounceRoundInput struct {
	ChannelID   string
	QuestionID  string
	Round       int
	RoundsTotal int
	Year        int
}

// AnnounceRoundOutput carries the reference for later countdown edits
type AnnounceRoundOutput struct {
	// MessageRef is opaque to the game core; empty disables countdown edits
	MessageRef string
}

// UpdateCountdownInput describes a countdown refresh
type UpdateCountdownInput struct {
	ChannelID   string
	MessageRef  string
	Round       int
	RoundsTotal int
	Year        int

	// Remaining is the number of seconds left in the round
	Remaining int
}

// AnnounceWinnerInput identifies a round winner
type AnnounceWinnerInput struct {
	ChannelID  string
	PlayerID   string
	PlayerName string
}

// AnnounceTimeoutInput carries the answers to reveal for an unsolved round
type AnnounceTimeoutInput struct {
	ChannelID string
	Aliases   []string
}

// AnnounceStoppedInput reports a cancelled game
type AnnounceStoppedInput struct {
	ChannelID string
}

// AnnounceEarlyEndInput reports a game ending before its round count
type AnnounceEarlyEndInput struct {
	ChannelID string
}

// AnnounceStandingsInput carries the final leaderboard
type AnnounceStandingsInput struct {
	ChannelID string

	// Standings are sorted by descending score
	Standings []*models.Standing
}
