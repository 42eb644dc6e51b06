package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/KirkDiggler/tanktrivia/internal/repositories/question"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Seeds the redis question bank from a question file, so deployments
// using QUESTION_SOURCE=redis can update questions without a restart.
func main() {
	path := flag.String("questions", "", "question bank JSON file (defaults to QUESTIONS_PATH)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if *path == "" {
		*path = getEnv("QUESTIONS_PATH", "answers.json")
	}

	fileRepo, err := question.NewFile(&question.FileConfig{
		Path: *path,
	})
	if err != nil {
		log.Fatalf("Failed to open question file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bank, err := fileRepo.GetQuestions(ctx, &question.GetQuestionsInput{})
	if err != nil {
		log.Fatalf("Failed to read questions: %v", err)
	}

	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	redisRepo, err := question.NewRedis(&question.RedisConfig{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	if err := redisRepo.SaveQuestions(ctx, &question.SaveQuestionsInput{
		Questions: bank.Questions,
	}); err != nil {
		log.Fatalf("Failed to save questions: %v", err)
	}

	log.Printf("Seeded %d questions from %s into redis at %s", len(bank.Questions), *path, redisAddr)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
