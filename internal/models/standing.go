package models

// Standing is one row of the final leaderboard
type Standing struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the number of rounds the player won
	Score int
}
