package testutil

import (
	"context"

	"vocabtrainer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) LoadWords(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockWordRepository) SaveWords(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

// MockSeedSource is a mock for SeedSource
type MockSeedSource struct {
	mock.Mock
}

func (m *MockSeedSource) FetchSeed(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

// MemoryWordRepository keeps the blob in memory for round-trip tests
type MemoryWordRepository struct {
	Data    []byte
	Saves   int
	LoadErr error
	SaveErr error
}

func (r *MemoryWordRepository) LoadWords(ctx context.Context) ([]byte, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	return r.Data, nil
}

func (r *MemoryWordRepository) SaveWords(ctx context.Context, data []byte) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Data = append([]byte(nil), data...)
	r.Saves++
	return nil
}
