package service

import (
	"sort"

	"vocabtrainer/internal/domain"
)

// Summary counts words per status
type Summary struct {
	Total      int
	Mastered   int
	InProgress int
	NotStarted int
}

// BuildList sorts words by descending mastery and labels each one.
// Equal counts keep insertion order. The input is not modified.
func BuildList(words []domain.WordPair) []domain.ListEntry {
	entries := make([]domain.ListEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, domain.ListEntry{Word: w, Status: w.Status()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Word.MasteryCount > entries[j].Word.MasteryCount
	})
	return entries
}

// Summarize counts list entries per status
func Summarize(entries []domain.ListEntry) Summary {
	sum := Summary{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case domain.StatusMastered:
			sum.Mastered++
		case domain.StatusInProgress:
			sum.InProgress++
		default:
			sum.NotStarted++
		}
	}
	return sum
}
