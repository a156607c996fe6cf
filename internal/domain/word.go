package domain

import "strings"

// Mastery thresholds for list view status labels
const (
	MasteredThreshold   = 3
	InProgressThreshold = 1
)

// WordPair is one vocabulary entry with its mastery counter
type WordPair struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	MasteryCount int    `json:"masteryCount"`
}

// NewWordPair trims both terms and returns a fresh pair with zero mastery.
// Returns ErrValidation if either term is blank.
func NewWordPair(front, back string) (WordPair, error) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return WordPair{}, ErrValidation
	}
	return WordPair{Front: front, Back: back}, nil
}

// Valid reports whether both terms are non-empty after trimming
func (w WordPair) Valid() bool {
	return strings.TrimSpace(w.Front) != "" && strings.TrimSpace(w.Back) != ""
}

// Apply updates mastery after a graded answer.
// Correct answers add one, misses subtract one but never go below zero.
func (w *WordPair) Apply(correct bool) {
	if correct {
		w.MasteryCount++
		return
	}
	if w.MasteryCount > 0 {
		w.MasteryCount--
	} else {
		w.MasteryCount = 0
	}
}

// Status returns the list view label for the word
func (w WordPair) Status() Status {
	return StatusFor(w.MasteryCount)
}

// Status is a three-tier progress label
type Status string

const (
	StatusMastered   Status = "mastered"
	StatusInProgress Status = "in progress"
	StatusNotStarted Status = "not started"
)

// StatusFor maps a mastery count to its label
func StatusFor(masteryCount int) Status {
	switch {
	case masteryCount >= MasteredThreshold:
		return StatusMastered
	case masteryCount >= InProgressThreshold:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// ListEntry is a word prepared for the list view
type ListEntry struct {
	Word   WordPair
	Status Status
}

// Record is a front/back pair without mastery, as produced by
// seed sources and bulk import
type Record struct {
	Front string
	Back  string
}
