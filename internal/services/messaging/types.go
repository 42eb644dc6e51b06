package messaging

// MessageTone controls the register of the returned flavor text
type MessageTone string

const (
	// MessageToneNeutral keeps announcements plain
	MessageToneNeutral MessageTone = "neutral"

	// MessageToneFunny allows jokes; the default
	MessageToneFunny MessageTone = "funny"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for deterministic message selection in tests
	Seed int64
}

// GetGameStartMessageInput contains parameters for the game start message
type GetGameStartMessageInput struct {
	// Rounds is the requested round count
	Rounds int

	// PreferredTone selects the message register; defaults to funny
	PreferredTone MessageTone
}

// GetGameStartMessageOutput contains the selected message
type GetGameStartMessageOutput struct {
	Message string
}

// GetWinnerMessageInput contains parameters for the winner message
type GetWinnerMessageInput struct {
	// Mention is the platform mention string for the winner (e.g. <@123>)
	Mention string

	// PreferredTone selects the message register; defaults to funny
	PreferredTone MessageTone
}

// GetWinnerMessageOutput contains the selected message
type GetWinnerMessageOutput struct {
	Message string
}

// GetTimeoutMessageInput contains parameters for the timeout message
type GetTimeoutMessageInput struct {
	// Answers is the comma-joined list of accepted aliases to reveal
	Answers string

	// PreferredTone selects the message register; defaults to funny
	PreferredTone MessageTone
}

// GetTimeoutMessageOutput contains the selected message
type GetTimeoutMessageOutput struct {
	Message string
}

// GetNoScoresMessageInput contains parameters for the scoreless game-over message
type GetNoScoresMessageInput struct {
	// PreferredTone selects the message register; defaults to funny
	PreferredTone MessageTone
}

// GetNoScoresMessageOutput contains the selected message
type GetNoScoresMessageOutput struct {
	Message string
}
