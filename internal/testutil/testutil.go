package testutil

import (
	"math/rand"

	"vocabtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(front, back string, masteryCount int) domain.WordPair {
	return domain.WordPair{
		Front:        front,
		Back:         back,
		MasteryCount: masteryCount,
	}
}

// NewTestRand returns a deterministic random source
func NewTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
