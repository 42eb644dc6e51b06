package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/KirkDiggler/tanktrivia/internal/models"
)

// ErrEmptyBank is returned when a question source contains no usable questions
var ErrEmptyBank = errors.New("question bank is empty")

// FileConfig holds configuration for the file-backed question repository
type FileConfig struct {
	// Path to the answers JSON file
	Path string
}

// fileRepository serves questions parsed once from a JSON file on disk
type fileRepository struct {
	questions []*models.Question
}

// NewFile creates a file-backed question repository. The file is parsed and
// validated here, so a malformed bank fails at startup rather than mid-game.
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}

	var records map[string]questionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse question file: %w", err)
	}

	questions := make([]*models.Question, 0, len(records))
	for id, record := range records {
		if err := validateRecord(id, record); err != nil {
			return nil, err
		}

		questions = append(questions, &models.Question{
			ID:      id,
			Aliases: record.Aliases,
			Year:    record.Year,
		})
	}

	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	// Stable order; games shuffle their own copy anyway
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].ID < questions[j].ID
	})

	return &fileRepository{
		questions: questions,
	}, nil
}

// GetQuestions retrieves every valid question in the bank
func (r *fileRepository) GetQuestions(ctx context.Context, input *GetQuestionsInput) (*GetQuestionsOutput, error) {
	questions := make([]*models.Question, len(r.questions))
	copy(questions, r.questions)

	return &GetQuestionsOutput{
		Questions: questions,
	}, nil
}

// validateRecord rejects malformed entries at load time so the matcher
// never has to deal with empty alias sets
func validateRecord(id string, record questionRecord) error {
	if id == "" {
		return errors.New("question with empty ID")
	}

	if len(record.Aliases) == 0 {
		return fmt.Errorf("question %q has no aliases", id)
	}

	for _, alias := range record.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("question %q has a blank alias", id)
		}
	}

	return nil
}
