// Package seed loads the initial word list used when storage is empty.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vocabtrainer/internal/domain"

	"gopkg.in/yaml.v3"
)

// maxSeedSize caps how much of a remote seed is read
const maxSeedSize = 10 << 20

// record accepts front/back and the legacy en/ja keys
type record struct {
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back" yaml:"back"`
	En    string `json:"en" yaml:"en"`
	Ja    string `json:"ja" yaml:"ja"`
}

func (r record) toRecord() domain.Record {
	rec := domain.Record{Front: r.Front, Back: r.Back}
	if rec.Front == "" {
		rec.Front = r.En
	}
	if rec.Back == "" {
		rec.Back = r.Ja
	}
	return rec
}

// Format is the encoding of a seed document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format by file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a seed document into records
func Decode(data []byte, format Format) ([]domain.Record, error) {
	var raw []record

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml seed: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json seed: %w", err)
		}
	}

	records := make([]domain.Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.toRecord())
	}
	return records, nil
}

// FileSource reads seed records from a local file
type FileSource struct {
	Path string
}

// NewFileSource creates a file seed source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// FetchSeed implements repository.SeedSource
func (s *FileSource) FetchSeed(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(data, FormatFromPath(s.Path))
}

// HTTPSource downloads seed records from a URL.
// A nil Client means http.DefaultClient.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTP seed source with a bounded timeout
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchSeed implements repository.SeedSource
func (s *HTTPSource) FetchSeed(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch seed: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSeedSize))
	if err != nil {
		return nil, fmt.Errorf("read seed body: %w", err)
	}

	format := FormatFromPath(req.URL.Path)
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		format = FormatYAML
	}
	return Decode(data, format)
}
