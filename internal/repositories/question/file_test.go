package question

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBank(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestNewFile_LoadsQuestions(t *testing.T) {
	path := writeBank(t, `{
		"tiger1.jpg": {"aliases": ["Tiger", "Tiger I"], "year": 1942},
		"sherman.jpg": {"aliases": ["Sherman", "M4 Sherman"], "year": 1943}
	}`)

	repo, err := NewFile(&FileConfig{Path: path})
	require.NoError(t, err)

	output, err := repo.GetQuestions(context.Background(), &GetQuestionsInput{})
	require.NoError(t, err)
	require.Len(t, output.Questions, 2)

	// Sorted by ID
	assert.Equal(t, "sherman.jpg", output.Questions[0].ID)
	assert.Equal(t, 1943, output.Questions[0].Year)
	assert.Equal(t, "tiger1.jpg", output.Questions[1].ID)
	assert.Equal(t, []string{"Tiger", "Tiger I"}, output.Questions[1].Aliases)
}

func TestNewFile_RejectsMissingAliases(t *testing.T) {
	path := writeBank(t, `{"tiger1.jpg": {"aliases": [], "year": 1942}}`)

	_, err := NewFile(&FileConfig{Path: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tiger1.jpg")
}

func TestNewFile_RejectsBlankAlias(t *testing.T) {
	path := writeBank(t, `{"tiger1.jpg": {"aliases": ["Tiger", "  "], "year": 1942}}`)

	_, err := NewFile(&FileConfig{Path: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank alias")
}

func TestNewFile_RejectsEmptyBank(t *testing.T) {
	path := writeBank(t, `{}`)

	_, err := NewFile(&FileConfig{Path: path})
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestNewFile_RejectsInvalidJSON(t *testing.T) {
	path := writeBank(t, `not json`)

	_, err := NewFile(&FileConfig{Path: path})
	assert.Error(t, err)
}

func TestNewFile_MissingFile(t *testing.T) {
	_, err := NewFile(&FileConfig{Path: filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestNewFile_NilConfig(t *testing.T) {
	_, err := NewFile(nil)
	assert.Error(t, err)
}

func TestGetQuestions_ReturnsCopy(t *testing.T) {
	path := writeBank(t, `{"tiger1.jpg": {"aliases": ["Tiger"], "year": 1942}}`)

	repo, err := NewFile(&FileConfig{Path: path})
	require.NoError(t, err)

	first, err := repo.GetQuestions(context.Background(), &GetQuestionsInput{})
	require.NoError(t, err)
	first.Questions[0] = nil

	second, err := repo.GetQuestions(context.Background(), &GetQuestionsInput{})
	require.NoError(t, err)
	assert.NotNil(t, second.Questions[0])
}
