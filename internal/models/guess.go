package models

// Guess is a free-text answer attempt from a channel participant
type Guess struct {
	// PlayerID is the Discord user ID of the guesser
	PlayerID string

	// PlayerName is the display name of the guesser
	PlayerName string

	// Content is the raw message text
	Content string
}
