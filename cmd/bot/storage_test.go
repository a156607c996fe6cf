package main

import (
	"context"
	"path/filepath"
	"testing"

	"vocabtrainer/internal/config"
	"vocabtrainer/internal/seed"
	"vocabtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSource(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SeedConfig
		expected interface{}
	}{
		{
			name:     "url wins",
			cfg:      config.SeedConfig{URL: "https://example.com/words.json", File: "words.json"},
			expected: &seed.HTTPSource{},
		},
		{
			name:     "file",
			cfg:      config.SeedConfig{File: "words.yaml"},
			expected: &seed.FileSource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := seedSource(&config.Config{Seed: tt.cfg})
			assert.IsType(t, tt.expected, src)
		})
	}

	assert.Nil(t, seedSource(&config.Config{}))
}

func TestOpenStorage_File(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Backend:  config.BackendFile,
			DataFile: filepath.Join(t.TempDir(), "words.json"),
		},
	}

	repo, closer, err := openStorage(context.Background(), cfg, testutil.NewTestLogger())
	require.NoError(t, err)
	defer closer.Close()

	require.NoError(t, repo.SaveWords(context.Background(), []byte("[]")))
	data, err := repo.LoadWords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), data)
}

func TestOpenStorage_Unsupported(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: "sqlite"}}

	_, _, err := openStorage(context.Background(), cfg, testutil.NewTestLogger())
	assert.Error(t, err)
}
