package question

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tanktrivia/internal/repositories/question Repository

import (
	"context"
)

// Repository defines the interface for question bank access
type Repository interface {
	// GetQuestions retrieves every valid question in the bank
	GetQuestions(ctx context.Context, input *GetQuestionsInput) (*GetQuestionsOutput, error)
}
