package match

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the minimum similarity ratio for a guess to count as correct
const DefaultThreshold = 0.7

// Config holds configuration for the matcher
type Config struct {
	// Threshold overrides DefaultThreshold when greater than zero.
	// Must be in (0, 1]; 1.0 means exact matches only.
	Threshold float64
}

// Matcher decides whether a free-text guess counts as a correct answer.
// It compares the guess against every alias using difflib's sequence
// matching ratio (Ratcliff/Obershelp: 2*M/T over matching characters)
// and accepts the first alias at or above the threshold.
type Matcher struct {
	threshold float64
}

// New creates a new matcher
func New(cfg *Config) *Matcher {
	threshold := DefaultThreshold
	if cfg != nil && cfg.Threshold > 0 {
		threshold = cfg.Threshold
	}

	return &Matcher{
		threshold: threshold,
	}
}

// Matches reports whether guess is close enough to any of the aliases.
// Comparison is case-insensitive and deterministic; an empty guess never
// matches. Aliases are assumed non-blank (enforced at question load time).
func (m *Matcher) Matches(guess string, aliases []string) bool {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if guess == "" {
		return false
	}

	guessSeq := strings.Split(guess, "")
	for _, alias := range aliases {
		aliasSeq := strings.Split(strings.ToLower(alias), "")
		ratio := difflib.NewMatcher(guessSeq, aliasSeq).Ratio()
		if ratio >= m.threshold {
			return true
		}
	}

	return false
}
