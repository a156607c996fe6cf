package service

import (
	"math/rand"
	"sync"
	"time"

	"vocabtrainer/internal/domain"
)

// maxWeight is the weight of a word that has never been answered correctly
const maxWeight = 3

// Weight returns the selection weight for a mastery count: 3, 2 or 1.
// Weaker words come up more often and no word drops out entirely.
func Weight(masteryCount int) int {
	if masteryCount < 0 {
		masteryCount = 0
	}
	if masteryCount > maxWeight-1 {
		masteryCount = maxWeight - 1
	}
	return maxWeight - masteryCount
}

// Selector draws quiz questions with mastery-weighted randomness
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector. A nil rng is replaced by a time-seeded one.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select picks a word and a direction. It only reads words.
func (s *Selector) Select(words []domain.WordPair) (domain.Question, error) {
	if len(words) == 0 {
		return domain.Question{}, domain.ErrEmptyCollection
	}

	total := 0
	for _, w := range words {
		total += Weight(w.MasteryCount)
	}

	s.mu.Lock()
	remaining := s.rng.Float64() * float64(total)
	forward := s.rng.Float64() < 0.5
	s.mu.Unlock()

	index := pickIndex(words, remaining)

	direction := domain.Reverse
	if forward {
		direction = domain.Forward
	}

	return domain.Question{
		Index:     index,
		Word:      words[index],
		Direction: direction,
	}, nil
}

// pickIndex walks words subtracting weights from r and returns the first
// index where r drops below zero. Falls back to the last index when
// rounding leaves r non-negative after the walk.
func pickIndex(words []domain.WordPair, r float64) int {
	for i, w := range words {
		r -= float64(Weight(w.MasteryCount))
		if r < 0 {
			return i
		}
	}
	return len(words) - 1
}
