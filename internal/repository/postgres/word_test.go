package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

const testKey = "vocab_words_v1"

func TestWordRepo_LoadWords(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedData  []byte
		expectedError bool
	}{
		{
			name: "blob found",
			mockRows: sqlmock.NewRows([]string{"value"}).
				AddRow([]byte(`[{"front":"apple","back":"りんご","masteryCount":1}]`)),
			expectedData: []byte(`[{"front":"apple","back":"りんご","masteryCount":1}]`),
		},
		{
			name:         "key absent",
			mockError:    sql.ErrNoRows,
			expectedData: nil,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("connection reset"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db, testKey)

			query := "SELECT value FROM kv_store WHERE key = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(testKey).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(testKey).WillReturnRows(tt.mockRows)
			}

			data, err := repo.LoadWords(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedData, data)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_SaveWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db, testKey)

	data := []byte(`[{"front":"book","back":"本","masteryCount":0}]`)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(testKey, string(data)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SaveWords(context.Background(), data)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_SaveWords_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db, testKey)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(testKey, "[]").
		WillReturnError(fmt.Errorf("disk full"))

	err = repo.SaveWords(context.Background(), []byte("[]"))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
