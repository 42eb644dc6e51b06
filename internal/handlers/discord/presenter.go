package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/tanktrivia/internal/repositories/asset"
	"github.com/KirkDiggler/tanktrivia/internal/services/game"
	"github.com/KirkDiggler/tanktrivia/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// PresenterConfig holds the configuration for the Discord presenter
type PresenterConfig struct {
	// Discord session, owned by the caller
	Session *discordgo.Session

	// Asset repository for question images
	AssetRepo asset.Repository

	// Messaging service for flavor text
	MessagingService messaging.Service
}

// Presenter renders game events into a Discord channel. The game core
// never touches discordgo directly; everything it says goes through here.
type Presenter struct {
	session   *discordgo.Session
	assetRepo asset.Repository
	messaging messaging.Service
}

// NewPresenter creates a new Discord presenter
func NewPresenter(cfg *PresenterConfig) (*Presenter, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.AssetRepo == nil {
		return nil, errors.New("asset repository cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Presenter{
		session:   cfg.Session,
		assetRepo: cfg.AssetRepo,
		messaging: cfg.MessagingService,
	}, nil
}

func roundHeader(round, roundsTotal, year int) string {
	return fmt.Sprintf("**Round %d/%d** — what tank is this? (Year: %d)", round, roundsTotal, year)
}

// AnnounceRound posts the question image to the channel. When the image
// cannot be loaded the round still runs, text-only, so a missing file
// never stalls a game.
func (p *Presenter) AnnounceRound(ctx context.Context, input *game.AnnounceRoundInput) (*game.AnnounceRoundOutput, error) {
	content := roundHeader(input.Round, input.RoundsTotal, input.Year)

	assetOutput, err := p.assetRepo.GetAsset(ctx, &asset.GetAssetInput{
		QuestionID: input.QuestionID,
	})
	if err != nil {
		log.Printf("Missing image for question %s: %v", input.QuestionID, err)

		msg, sendErr := p.session.ChannelMessageSend(input.ChannelID,
			content+"\n(No picture this time — go by the year.)")
		if sendErr != nil {
			return nil, fmt.Errorf("failed to send round message: %w", sendErr)
		}
		return &game.AnnounceRoundOutput{MessageRef: msg.ID}, nil
	}
	defer assetOutput.Reader.Close()

	msg, err := p.session.ChannelFileSendWithMessage(input.ChannelID, content, assetOutput.Name, assetOutput.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to send round message: %w", err)
	}

	return &game.AnnounceRoundOutput{MessageRef: msg.ID}, nil
}

// UpdateCountdown edits the round message with the seconds remaining.
// Editing the content keeps the attachment in place.
func (p *Presenter) UpdateCountdown(ctx context.Context, input *game.UpdateCountdownInput) error {
	content := roundHeader(input.Round, input.RoundsTotal, input.Year) +
		fmt.Sprintf("\n⏳ %d seconds left...", input.Remaining)

	_, err := p.session.ChannelMessageEdit(input.ChannelID, input.MessageRef, content)
	if err != nil {
		return fmt.Errorf("failed to edit countdown: %w", err)
	}

	return nil
}

// AnnounceWinner congratulates the round winner
func (p *Presenter) AnnounceWinner(ctx context.Context, input *game.AnnounceWinnerInput) error {
	winnerMsg, err := p.messaging.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{
		Mention: fmt.Sprintf("<@%s>", input.PlayerID),
	})
	if err != nil {
		return fmt.Errorf("failed to get winner message: %w", err)
	}

	_, err = p.session.ChannelMessageSend(input.ChannelID, winnerMsg.Message)
	return err
}

// AnnounceTimeout reveals the accepted answers for an unsolved round
func (p *Presenter) AnnounceTimeout(ctx context.Context, input *game.AnnounceTimeoutInput) error {
	timeoutMsg, err := p.messaging.GetTimeoutMessage(ctx, &messaging.GetTimeoutMessageInput{
		Answers: strings.Join(input.Aliases, ", "),
	})
	if err != nil {
		return fmt.Errorf("failed to get timeout message: %w", err)
	}

	_, err = p.session.ChannelMessageSend(input.ChannelID, timeoutMsg.Message)
	return err
}

// AnnounceStopped reports an in-chat stop
func (p *Presenter) AnnounceStopped(ctx context.Context, input *game.AnnounceStoppedInput) error {
	_, err := p.session.ChannelMessageSend(input.ChannelID, "🛑 Game stopped.")
	return err
}

// AnnounceEarlyEnd reports that the question pool ran out first
func (p *Presenter) AnnounceEarlyEnd(ctx context.Context, input *game.AnnounceEarlyEndInput) error {
	_, err := p.session.ChannelMessageSend(input.ChannelID,
		"📭 That was every question in range — ending the game early.")
	return err
}

// AnnounceStandings posts the final leaderboard, or the scoreless line
// when nobody got a point
func (p *Presenter) AnnounceStandings(ctx context.Context, input *game.AnnounceStandingsInput) error {
	if len(input.Standings) == 0 {
		noScoresMsg, err := p.messaging.GetNoScoresMessage(ctx, &messaging.GetNoScoresMessageInput{})
		if err != nil {
			return fmt.Errorf("failed to get no-scores message: %w", err)
		}

		_, err = p.session.ChannelMessageSend(input.ChannelID, noScoresMsg.Message)
		return err
	}

	var sb strings.Builder
	sb.WriteString("🏆 **Final standings:**\n")
	for rank, standing := range input.Standings {
		points := "points"
		if standing.Score == 1 {
			points = "point"
		}
		sb.WriteString(fmt.Sprintf("%d. **%s** — %d %s\n", rank+1, standing.PlayerName, standing.Score, points))
	}

	_, err := p.session.ChannelMessageSend(input.ChannelID, sb.String())
	return err
}
