package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusStopped indicates a game was cancelled before finishing
	GameStatusStopped GameStatus = "stopped"

	// GameStatusCompleted indicates a game ran to completion
	GameStatusCompleted GameStatus = "completed"
)

// Game represents one trivia game session in a Discord channel
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// ChannelID is the Discord channel where the game is being played
	ChannelID string

	// StartedBy is the Discord user ID of the player who started the game
	StartedBy string

	// StartYear and EndYear bound the production years of eligible questions
	StartYear int
	EndYear   int

	// RoundsTotal is how many rounds were requested (1-50)
	RoundsTotal int

	// RoundNum is the number of rounds started so far; never exceeds RoundsTotal
	RoundNum int

	// Status is the current state of the game
	Status GameStatus

	// CreatedAt is when the game was created
	CreatedAt time.Time
}
