package repository

import (
	"context"

	"vocabtrainer/internal/domain"
)

// DefaultKey is the storage key holding the serialized word list
const DefaultKey = "vocab_words_v1"

// WordRepository stores the whole word list as one serialized value.
// LoadWords returns nil data and nil error when nothing is stored yet.
type WordRepository interface {
	LoadWords(ctx context.Context) ([]byte, error)
	SaveWords(ctx context.Context, data []byte) error
}

// SeedSource provides the initial word list when storage is empty
type SeedSource interface {
	FetchSeed(ctx context.Context) ([]domain.Record, error)
}
