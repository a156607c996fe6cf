package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendFile     = "file"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Storage  StorageConfig
	Database DatabaseConfig
	Seed     SeedConfig
}

// StorageConfig selects where the word list blob lives
type StorageConfig struct {
	Backend  string
	Key      string
	RedisURL string
	DataFile string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// SeedConfig points at the bootstrap word list
type SeedConfig struct {
	URL  string
	File string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", BackendPostgres),
			Key:      getEnv("STORAGE_KEY", "vocab_words_v1"),
			RedisURL: os.Getenv("REDIS_URL"),
			DataFile: getEnv("DATA_FILE", "data/words.json"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabtrainer"),
			User:     getEnv("DB_USER", "vocabtrainer"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Seed: SeedConfig{
			URL:  os.Getenv("SEED_URL"),
			File: getEnv("SEED_FILE", "words.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields for the selected backend
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("STORAGE_KEY cannot be empty")
	}

	switch c.Storage.Backend {
	case BackendPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for postgres storage")
		}
	case BackendRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for redis storage")
		}
	case BackendFile:
		if c.Storage.DataFile == "" {
			return fmt.Errorf("DATA_FILE is required for file storage")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND %q is not supported", c.Storage.Backend)
	}

	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
