package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"vocabtrainer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		format        Format
		expected      []domain.Record
		expectedError bool
	}{
		{
			name:   "json front back",
			data:   `[{"front":"apple","back":"りんご"},{"front":"book","back":"本"}]`,
			format: FormatJSON,
			expected: []domain.Record{
				{Front: "apple", Back: "りんご"},
				{Front: "book", Back: "本"},
			},
		},
		{
			name:   "json legacy keys",
			data:   `[{"en":"cat","ja":"猫"}]`,
			format: FormatJSON,
			expected: []domain.Record{
				{Front: "cat", Back: "猫"},
			},
		},
		{
			name:   "yaml",
			data:   "- front: apple\n  back: りんご\n- en: dog\n  ja: 犬\n",
			format: FormatYAML,
			expected: []domain.Record{
				{Front: "apple", Back: "りんご"},
				{Front: "dog", Back: "犬"},
			},
		},
		{
			name:          "malformed json",
			data:          `{"front":`,
			format:        FormatJSON,
			expectedError: true,
		},
		{
			name:          "json object instead of list",
			data:          `{"front":"a","back":"b"}`,
			format:        FormatJSON,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Decode([]byte(tt.data), tt.format)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, records)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("seed/words.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("WORDS.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("words.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("words"))
}

func TestFileSource_FetchSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.yml")
	require.NoError(t, os.WriteFile(path, []byte("- front: sun\n  back: 太陽\n"), 0o644))

	records, err := NewFileSource(path).FetchSeed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Record{{Front: "sun", Back: "太陽"}}, records)

	_, err = NewFileSource(filepath.Join(dir, "missing.json")).FetchSeed(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource_FetchSeed(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedLen   int
		expectedError bool
	}{
		{
			name:        "ok",
			status:      http.StatusOK,
			body:        `[{"front":"apple","back":"りんご"}]`,
			expectedLen: 1,
		},
		{
			name:          "not found",
			status:        http.StatusNotFound,
			body:          "missing",
			expectedError: true,
		},
		{
			name:          "bad body",
			status:        http.StatusOK,
			body:          "<html>",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			records, err := NewHTTPSource(srv.URL + "/words.json").FetchSeed(context.Background())
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.expectedLen)
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url).FetchSeed(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource_NilClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"front":"apple","back":"りんご"}]`))
	}))
	defer srv.Close()

	src := &HTTPSource{URL: srv.URL}
	records, err := src.FetchSeed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Record{{Front: "apple", Back: "りんご"}}, records)
}
