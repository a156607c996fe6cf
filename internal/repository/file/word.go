package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WordRepo implements repository.WordRepository on a single JSON file
type WordRepo struct {
	path string
}

// NewWordRepo creates a repository writing to path
func NewWordRepo(path string) *WordRepo {
	return &WordRepo{path: path}
}

// LoadWords reads the file, returning nil if it does not exist yet
func (r *WordRepo) LoadWords(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return data, nil
}

// SaveWords replaces the file contents atomically.
// The old file stays intact if any step fails.
func (r *WordRepo) SaveWords(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
