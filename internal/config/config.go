package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Question bank sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Config holds the runtime configuration for the bot, read from the
// environment with an optional .env file on top
type Config struct {
	// DiscordToken authenticates the bot session
	DiscordToken string

	// ApplicationID for slash command registration
	ApplicationID string

	// GuildID scopes commands to one server during development
	GuildID string

	// RedisAddr and RedisPassword configure the optional redis question source
	RedisAddr     string
	RedisPassword string

	// QuestionSource selects where the bank loads from: "file" or "redis"
	QuestionSource string

	// QuestionsPath is the question bank JSON file
	QuestionsPath string

	// AssetsDir holds the question images
	AssetsDir string
}

// Load reads configuration from the environment. A missing .env file is
// fine; a missing Discord token is not.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		ApplicationID:  os.Getenv("APPLICATION_ID"),
		GuildID:        os.Getenv("GUILD_ID"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		QuestionSource: getEnv("QUESTION_SOURCE", SourceFile),
		QuestionsPath:  getEnv("QUESTIONS_PATH", "answers.json"),
		AssetsDir:      getEnv("ASSETS_DIR", "tanks"),
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}

	if cfg.QuestionSource != SourceFile && cfg.QuestionSource != SourceRedis {
		return nil, errors.New("QUESTION_SOURCE must be \"file\" or \"redis\"")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
