package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/tanktrivia/internal/services/game"
	"github.com/KirkDiggler/tanktrivia/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Defaults for the start subcommand options
const (
	DefaultStartYear = 1900
	DefaultEndYear   = 2025
	DefaultRounds    = 10
)

// TriviaCommand handles the /trivia command
type TriviaCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewTriviaCommand creates a new trivia command handler
func NewTriviaCommand(gameService game.Service, messagingService messaging.Service) *TriviaCommand {
	return &TriviaCommand{
		BaseCommand: BaseCommand{
			Name:        "trivia",
			Description: "Tank identification trivia game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a trivia game in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "start_year",
							Description: fmt.Sprintf("Earliest production year to include (default %d)", DefaultStartYear),
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "end_year",
							Description: fmt.Sprintf("Latest production year to include (default %d)", DefaultEndYear),
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rounds",
							Description: fmt.Sprintf("Number of rounds to play, 1-50 (default %d)", DefaultRounds),
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop the trivia game running in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "Show how to play",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the trivia command
func (c *TriviaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	// Get the channel ID and user information
	channelID := i.ChannelID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	// Handle the appropriate subcommand
	var err error
	switch data.Options[0].Name {
	case "start":
		err = c.handleStart(s, i, data.Options[0].Options, channelID, userID, username)
	case "stop":
		err = c.handleStop(s, i, channelID)
	case "help":
		err = c.handleHelp(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleStart handles the start subcommand
func (c *TriviaCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption, channelID, userID, username string) error {
	ctx := context.Background()

	startYear := DefaultStartYear
	endYear := DefaultEndYear
	rounds := DefaultRounds

	for _, opt := range options {
		switch opt.Name {
		case "start_year":
			startYear = int(opt.IntValue())
		case "end_year":
			endYear = int(opt.IntValue())
		case "rounds":
			rounds = int(opt.IntValue())
		}
	}

	if startYear > endYear {
		return RespondWithEphemeralMessage(s, i,
			fmt.Sprintf("The start year (%d) must not be after the end year (%d).", startYear, endYear))
	}

	startOutput, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		ChannelID:  channelID,
		PlayerID:   userID,
		PlayerName: username,
		StartYear:  startYear,
		EndYear:    endYear,
		Rounds:     rounds,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrGameAlreadyRunning):
			return RespondWithEphemeralMessage(s, i,
				"A trivia game is already running in this channel. Use `/trivia stop` to end it first.")
		case errors.Is(err, game.ErrInvalidRoundCount):
			return RespondWithEphemeralMessage(s, i,
				"Rounds must be between 1 and 50.")
		case errors.Is(err, game.ErrNoQuestionsInRange):
			return RespondWithEphemeralMessage(s, i,
				fmt.Sprintf("No tanks in the bank were produced between %d and %d. Try a wider range.", startYear, endYear))
		default:
			log.Printf("Error starting game in channel %s: %v", channelID, err)
			return RespondWithError(s, i, fmt.Sprintf("Failed to start game: %v", err))
		}
	}

	startMsg, err := c.messagingService.GetGameStartMessage(ctx, &messaging.GetGameStartMessageInput{
		Rounds: startOutput.Rounds,
	})
	if err != nil {
		log.Printf("Error getting start message: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to announce game: %v", err))
	}

	message := startMsg.Message
	if startOutput.EarlyEndPossible {
		message += fmt.Sprintf("\n(Only %d questions match that range, so the game may end early.)", startOutput.PoolSize)
	}

	// The kickoff goes to the whole channel; the rounds follow from the
	// game loop via the presenter
	return RespondWithMessage(s, i, message)
}

// handleStop handles the stop subcommand
func (c *TriviaCommand) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	ctx := context.Background()

	_, err := c.gameService.StopGame(ctx, &game.StopGameInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrNoActiveGame) {
			return RespondWithEphemeralMessage(s, i, "No trivia game is running in this channel.")
		}
		log.Printf("Error stopping game in channel %s: %v", channelID, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to stop game: %v", err))
	}

	// The game loop announces the final standings once it winds down
	return RespondWithMessage(s, i, "🛑 Stopping the trivia game...")
}

// handleHelp handles the help subcommand
func (c *TriviaCommand) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	help := "**Tank Trivia** — guess the tank in the picture!\n\n" +
		"`/trivia start` — start a game (options: `start_year`, `end_year`, `rounds`)\n" +
		"`/trivia stop` — stop the running game\n\n" +
		"During a round, just type your guess in the channel. Close spellings count, " +
		"and the first correct answer wins the round. Type `!stop` to end the game from chat."

	return RespondWithEphemeralMessage(s, i, help)
}
