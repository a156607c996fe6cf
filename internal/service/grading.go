package service

import (
	"strings"

	"vocabtrainer/internal/domain"

	"golang.org/x/text/cases"
)

// Grade compares an answer with the expected term for the direction.
// The answer is trimmed and both sides are case-folded; nothing else is
// normalized.
func Grade(word domain.WordPair, direction domain.Direction, answer string) (bool, string) {
	expected := word.Back
	if direction == domain.Reverse {
		expected = word.Front
	}

	// Caser is stateful, so each call gets its own
	fold := cases.Fold()
	given := fold.String(strings.TrimSpace(answer))
	want := fold.String(expected)

	return given == want, expected
}
