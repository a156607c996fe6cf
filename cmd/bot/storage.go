package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"vocabtrainer/internal/config"
	"vocabtrainer/internal/repository"
	filerepo "vocabtrainer/internal/repository/file"
	"vocabtrainer/internal/repository/postgres"
	redisrepo "vocabtrainer/internal/repository/redis"
	"vocabtrainer/internal/seed"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStorage builds the word repository for the configured backend.
// The returned closer releases the underlying connection.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.WordRepository, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		// Connect to database with retries
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Database connection established")

		// Run migrations
		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}

		logger.Info("Database migrations completed")
		return postgres.NewWordRepo(db, cfg.Storage.Key), db, nil

	case config.BackendRedis:
		client, err := redisrepo.Connect(ctx, cfg.Storage.RedisURL)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Redis connection established")
		return redisrepo.NewWordRepo(client, cfg.Storage.Key), client, nil

	case config.BackendFile:
		logger.Info("Using file storage", zap.String("path", cfg.Storage.DataFile))
		return filerepo.NewWordRepo(cfg.Storage.DataFile), nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
}

// seedSource picks the bootstrap source, preferring a URL over a file
func seedSource(cfg *config.Config) repository.SeedSource {
	if cfg.Seed.URL != "" {
		return seed.NewHTTPSource(cfg.Seed.URL)
	}
	if cfg.Seed.File != "" {
		return seed.NewFileSource(cfg.Seed.File)
	}
	return nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// A single writer stores one row, a small pool is enough
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
