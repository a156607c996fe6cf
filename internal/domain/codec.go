package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// storedWord accepts the current keys plus the legacy en/ja/correctCount
// keys written by the browser version
type storedWord struct {
	Front        string          `json:"front"`
	Back         string          `json:"back"`
	MasteryCount json.RawMessage `json:"masteryCount"`

	En           string          `json:"en"`
	Ja           string          `json:"ja"`
	CorrectCount json.RawMessage `json:"correctCount"`
}

func (s storedWord) toWordPair() WordPair {
	w := WordPair{Front: s.Front, Back: s.Back}
	if w.Front == "" {
		w.Front = s.En
	}
	if w.Back == "" {
		w.Back = s.Ja
	}

	raw := s.MasteryCount
	if len(raw) == 0 {
		raw = s.CorrectCount
	}
	w.MasteryCount = coerceCount(raw)
	return w
}

// coerceCount turns any stored counter into a non-negative int.
// Missing, null, non-numeric and negative values all become zero.
func coerceCount(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0
	}
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// DecodeWords parses a persisted blob into normalized word pairs.
// Empty input yields an empty slice. Entries that are not objects or
// have a blank term are skipped and counted in dropped.
func DecodeWords(data []byte) (words []WordPair, dropped int, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []WordPair{}, 0, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, 0, fmt.Errorf("decode word list: %w", err)
	}

	words = make([]WordPair, 0, len(items))
	for _, item := range items {
		var s storedWord
		if err := json.Unmarshal(item, &s); err != nil {
			dropped++
			continue
		}
		w := s.toWordPair()
		if !w.Valid() {
			dropped++
			continue
		}
		words = append(words, w)
	}
	return words, dropped, nil
}

// EncodeWords serializes the full collection
func EncodeWords(words []WordPair) ([]byte, error) {
	if words == nil {
		words = []WordPair{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return nil, fmt.Errorf("encode word list: %w", err)
	}
	return data, nil
}
