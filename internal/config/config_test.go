package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "STORAGE_BACKEND", "STORAGE_KEY", "REDIS_URL", "DATA_FILE",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"SEED_URL", "SEED_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "vocab_words_v1", cfg.Storage.Key)
	assert.Equal(t, "data/words.json", cfg.Storage.DataFile)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "vocabtrainer", cfg.Database.Name)
	assert.Equal(t, "vocabtrainer", cfg.Database.User)
	assert.Equal(t, "words.json", cfg.Seed.File)
	assert.Empty(t, cfg.Seed.URL)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError string
	}{
		{
			name:          "missing bot token",
			env:           map[string]string{"DB_PASSWORD": "pw"},
			expectedError: "BOT_TOKEN",
		},
		{
			name:          "postgres without password",
			env:           map[string]string{"BOT_TOKEN": "t"},
			expectedError: "DB_PASSWORD",
		},
		{
			name:          "redis without url",
			env:           map[string]string{"BOT_TOKEN": "t", "STORAGE_BACKEND": "redis"},
			expectedError: "REDIS_URL",
		},
		{
			name:          "unknown backend",
			env:           map[string]string{"BOT_TOKEN": "t", "STORAGE_BACKEND": "sqlite"},
			expectedError: "STORAGE_BACKEND",
		},
		{
			name: "file backend needs no credentials",
			env:  map[string]string{"BOT_TOKEN": "t", "STORAGE_BACKEND": "file"},
		},
		{
			name: "redis with url",
			env:  map[string]string{"BOT_TOKEN": "t", "STORAGE_BACKEND": "redis", "REDIS_URL": "redis://localhost:6379"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, cfg)
		})
	}
}
