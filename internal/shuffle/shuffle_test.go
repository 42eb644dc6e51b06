package shuffle

import (
	"testing"

	"github.com/KirkDiggler/tanktrivia/internal/models"
	"github.com/stretchr/testify/assert"
)

func newPool(ids ...string) []*models.Question {
	pool := make([]*models.Question, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, &models.Question{ID: id, Aliases: []string{id}})
	}
	return pool
}

func TestShuffle_KeepsAllQuestions(t *testing.T) {
	s := New(&Config{Seed: 42})
	pool := newPool("a", "b", "c", "d", "e")

	s.Shuffle(pool)

	seen := make(map[string]bool)
	for _, q := range pool {
		seen[q.ID] = true
	}
	assert.Len(t, seen, 5)
}

func TestShuffle_DeterministicWithSeed(t *testing.T) {
	first := newPool("a", "b", "c", "d", "e", "f", "g", "h")
	second := newPool("a", "b", "c", "d", "e", "f", "g", "h")

	New(&Config{Seed: 7}).Shuffle(first)
	New(&Config{Seed: 7}).Shuffle(second)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestShuffle_EmptyPool(t *testing.T) {
	s := New(nil)

	assert.NotPanics(t, func() {
		s.Shuffle(nil)
		s.Shuffle([]*models.Question{})
	})
}
