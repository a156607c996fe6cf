package domain

import "errors"

// Sentinel errors, check with errors.Is
var (
	ErrBootstrap        = errors.New("failed to bootstrap word list")
	ErrValidation       = errors.New("front and back cannot be empty")
	ErrNoValidData      = errors.New("no valid word pairs in input")
	ErrEmptyCollection  = errors.New("no words to quiz")
	ErrAlreadyGraded    = errors.New("question already graded")
	ErrNoActiveQuestion = errors.New("no active question")
	ErrStaleQuestion    = errors.New("question no longer matches word list")
	ErrNotLoaded        = errors.New("stored words could not be loaded")
)
