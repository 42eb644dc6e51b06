package question

import "github.com/KirkDiggler/tanktrivia/internal/models"

type GetQuestionsInput struct {
}

type GetQuestionsOutput struct {
	Questions []*models.Question
}

type SaveQuestionsInput struct {
	Questions []*models.Question
}

// questionRecord is the stored form of a question, keyed by asset ID.
// It matches the answers.json layout: {"tiger1.jpg": {"aliases": [...], "year": 1942}}
type questionRecord struct {
	Aliases []string `json:"aliases"`
	Year    int      `json:"year"`
}
