package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/tanktrivia/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	questionKeyPrefix = "question:"
	questionSetKey    = "questions"
)

// RedisConfig holds configuration for the Redis question repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed question repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetQuestions retrieves every valid question in the bank. Any malformed
// entry fails the whole load; the bank is supposed to be vetted at seed time.
func (r *redisRepository) GetQuestions(ctx context.Context, input *GetQuestionsInput) (*GetQuestionsOutput, error) {
	ids, err := r.client.SMembers(ctx, questionSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	if len(ids) == 0 {
		return nil, ErrEmptyBank
	}

	sort.Strings(ids)

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	gets := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		gets[i] = pipe.Get(ctx, questionKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}

	questions := make([]*models.Question, 0, len(ids))
	for i, id := range ids {
		var record questionRecord
		if err := json.Unmarshal([]byte(gets[i].Val()), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question %q: %w", id, err)
		}

		if err := validateRecord(id, record); err != nil {
			return nil, err
		}

		questions = append(questions, &models.Question{
			ID:      id,
			Aliases: record.Aliases,
			Year:    record.Year,
		})
	}

	return &GetQuestionsOutput{
		Questions: questions,
	}, nil
}

// SaveQuestions persists a batch of questions, replacing entries with the
// same ID. Used by the seed tool; not part of the Repository interface.
func (r *redisRepository) SaveQuestions(ctx context.Context, input *SaveQuestionsInput) error {
	if input == nil || len(input.Questions) == 0 {
		return errors.New("input must contain at least one question")
	}

	pipe := r.client.Pipeline()
	for _, q := range input.Questions {
		record := questionRecord{
			Aliases: q.Aliases,
			Year:    q.Year,
		}

		if err := validateRecord(q.ID, record); err != nil {
			return err
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal question %q: %w", q.ID, err)
		}

		pipe.Set(ctx, questionKeyPrefix+q.ID, data, 0)
		pipe.SAdd(ctx, questionSetKey, q.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save questions: %w", err)
	}

	return nil
}
