package question

import (
	"context"
	"testing"

	"github.com/KirkDiggler/tanktrivia/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   *redisRepository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetQuestions() {
	err := s.repo.SaveQuestions(context.Background(), &SaveQuestionsInput{
		Questions: []*models.Question{
			{ID: "tiger1.jpg", Aliases: []string{"Tiger", "Tiger I"}, Year: 1942},
			{ID: "sherman.jpg", Aliases: []string{"Sherman"}, Year: 1943},
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetQuestions(context.Background(), &GetQuestionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Questions, 2)

	// IDs come back sorted
	s.Equal("sherman.jpg", output.Questions[0].ID)
	s.Equal("tiger1.jpg", output.Questions[1].ID)
	s.Equal([]string{"Tiger", "Tiger I"}, output.Questions[1].Aliases)
	s.Equal(1942, output.Questions[1].Year)
}

func (s *RedisRepositoryTestSuite) TestSaveQuestions_OverwritesExisting() {
	ctx := context.Background()

	err := s.repo.SaveQuestions(ctx, &SaveQuestionsInput{
		Questions: []*models.Question{
			{ID: "tiger1.jpg", Aliases: []string{"Tiger"}, Year: 1942},
		},
	})
	s.Require().NoError(err)

	err = s.repo.SaveQuestions(ctx, &SaveQuestionsInput{
		Questions: []*models.Question{
			{ID: "tiger1.jpg", Aliases: []string{"Tiger", "Tiger I"}, Year: 1942},
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetQuestions(ctx, &GetQuestionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Questions, 1)
	s.Equal([]string{"Tiger", "Tiger I"}, output.Questions[0].Aliases)
}

func (s *RedisRepositoryTestSuite) TestSaveQuestions_RejectsMalformed() {
	err := s.repo.SaveQuestions(context.Background(), &SaveQuestionsInput{
		Questions: []*models.Question{
			{ID: "tiger1.jpg", Aliases: nil, Year: 1942},
		},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "tiger1.jpg")
}

func (s *RedisRepositoryTestSuite) TestGetQuestions_EmptyBank() {
	_, err := s.repo.GetQuestions(context.Background(), &GetQuestionsInput{})
	s.ErrorIs(err, ErrEmptyBank)
}

func (s *RedisRepositoryTestSuite) TestGetQuestions_RejectsCorruptEntry() {
	ctx := context.Background()

	// Bypass SaveQuestions to plant a corrupt record
	s.Require().NoError(s.client.SAdd(ctx, questionSetKey, "bad.jpg").Err())
	s.Require().NoError(s.client.Set(ctx, questionKeyPrefix+"bad.jpg", "not json", 0).Err())

	_, err := s.repo.GetQuestions(ctx, &GetQuestionsInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "bad.jpg")
}

func (s *RedisRepositoryTestSuite) TestNewRedis_NilConfig() {
	_, err := NewRedis(nil)
	s.Error(err)
}
