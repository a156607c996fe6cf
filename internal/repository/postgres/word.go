package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// WordRepo implements repository.WordRepository on a key/value table
type WordRepo struct {
	db  *sql.DB
	key string
}

// NewWordRepo creates a new word repository bound to one storage key
func NewWordRepo(db *sql.DB, key string) *WordRepo {
	return &WordRepo{db: db, key: key}
}

// LoadWords returns the stored word list blob, or nil if the key is absent
func (r *WordRepo) LoadWords(ctx context.Context) ([]byte, error) {
	var data []byte

	query := `
		SELECT value
		FROM kv_store
		WHERE key = $1
	`

	err := r.db.QueryRowContext(ctx, query, r.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// SaveWords overwrites the stored blob with the full word list
func (r *WordRepo) SaveWords(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	// jsonb parameters must go over the wire as text, not bytea
	_, err := r.db.ExecContext(ctx, query, r.key, string(data))
	return err
}
