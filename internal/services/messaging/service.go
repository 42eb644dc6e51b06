package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetGameStartMessage returns the kickoff announcement for a new game
func (s *service) GetGameStartMessage(ctx context.Context, input *GetGameStartMessageInput) (*GetGameStartMessageOutput, error) {
	header := fmt.Sprintf("🎮 **Tank Trivia started!** Up to %d rounds. First correct answer gets the point!", input.Rounds)

	if tone(input.PreferredTone) == MessageToneNeutral {
		return &GetGameStartMessageOutput{Message: header}, nil
	}

	taglines := []string{
		"Sharpen those eyeballs, commanders.",
		"Time to find out who actually reads armor encyclopedias.",
		"Loader, load the questions!",
		"May the best spotter win.",
	}

	return &GetGameStartMessageOutput{
		Message: header + "\n" + s.pick(taglines),
	}, nil
}

// GetWinnerMessage returns a congratulation line for a round winner
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if tone(input.PreferredTone) == MessageToneNeutral {
		return &GetWinnerMessageOutput{
			Message: fmt.Sprintf("✅ %s got it right! (+1)", input.Mention),
		}, nil
	}

	messages := []string{
		"✅ %s got it right! (+1)",
		"✅ %s got it right! (+1) Those recognition charts paid off.",
		"✅ %s got it right! (+1) Fastest barrel in the channel.",
		"✅ %s got it right! (+1) Someone's been grinding the tech tree.",
	}

	return &GetWinnerMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.Mention),
	}, nil
}

// GetTimeoutMessage returns the reveal line for a round nobody got
func (s *service) GetTimeoutMessage(ctx context.Context, input *GetTimeoutMessageInput) (*GetTimeoutMessageOutput, error) {
	if tone(input.PreferredTone) == MessageToneNeutral {
		return &GetTimeoutMessageOutput{
			Message: fmt.Sprintf("⏰ Time's up! Correct answers were: **%s**", input.Answers),
		}, nil
	}

	messages := []string{
		"⏰ Time's up! Correct answers were: **%s**",
		"⏰ Time's up! Nobody? Really? It was: **%s**",
		"⏰ Time's up! The answer rolls away unrecognized: **%s**",
	}

	return &GetTimeoutMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.Answers),
	}, nil
}

// GetNoScoresMessage returns the game-over line for a scoreless game
func (s *service) GetNoScoresMessage(ctx context.Context, input *GetNoScoresMessageInput) (*GetNoScoresMessageOutput, error) {
	if tone(input.PreferredTone) == MessageToneNeutral {
		return &GetNoScoresMessageOutput{Message: "Nobody got any points 😢"}, nil
	}

	messages := []string{
		"Nobody got any points 😢",
		"Nobody got any points 😢 The tanks remain anonymous.",
		"Zero points all around. The quartermaster is disappointed.",
	}

	return &GetNoScoresMessageOutput{
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

func tone(t MessageTone) MessageTone {
	if t == "" {
		return MessageToneFunny
	}
	return t
}
