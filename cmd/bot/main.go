package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/tanktrivia/internal/config"
	"github.com/KirkDiggler/tanktrivia/internal/handlers/discord"
	"github.com/KirkDiggler/tanktrivia/internal/match"
	"github.com/KirkDiggler/tanktrivia/internal/repositories/asset"
	"github.com/KirkDiggler/tanktrivia/internal/repositories/question"
	gameService "github.com/KirkDiggler/tanktrivia/internal/services/game"
	"github.com/KirkDiggler/tanktrivia/internal/services/messaging"
	"github.com/KirkDiggler/tanktrivia/internal/shuffle"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the question repository. The bank is parsed and validated
	// here so a broken bank fails at startup, not mid-game.
	questionRepo, err := buildQuestionRepo(cfg)
	if err != nil {
		log.Fatalf("Failed to create question repository: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bank, err := questionRepo.GetQuestions(ctx, &question.GetQuestionsInput{})
	if err != nil {
		log.Fatalf("Failed to load question bank: %v", err)
	}
	log.Printf("Loaded %d questions", len(bank.Questions))

	assetRepo, err := asset.NewFile(&asset.FileConfig{
		Dir: cfg.AssetsDir,
	})
	if err != nil {
		log.Fatalf("Failed to create asset repository: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Create the Discord session up front; the presenter and the bot share it
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	presenter, err := discord.NewPresenter(&discord.PresenterConfig{
		Session:          session,
		AssetRepo:        assetRepo,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create presenter: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		QuestionRepo: questionRepo,
		Matcher:      match.New(nil),
		Shuffler:     shuffle.New(nil),
		Presenter:    presenter,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// buildQuestionRepo picks the bank source from configuration
func buildQuestionRepo(cfg *config.Config) (question.Repository, error) {
	if cfg.QuestionSource == config.SourceRedis {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		return question.NewRedis(&question.RedisConfig{
			RedisClient: redisClient,
		})
	}

	return question.NewFile(&question.FileConfig{
		Path: cfg.QuestionsPath,
	})
}
