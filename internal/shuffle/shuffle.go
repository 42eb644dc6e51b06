package shuffle

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/tanktrivia/internal/models"
)

// Shuffler produces uniform random permutations of question pools
type Shuffler struct {
	random *rand.Rand
}

// Config for shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Shuffler{
		random: random,
	}
}

// Shuffle permutes the pool in place
func (s *Shuffler) Shuffle(pool []*models.Question) {
	s.random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}
