package service

import (
	"strings"

	"vocabtrainer/internal/domain"
)

// importDelimiter separates front and back on a bulk import line
const importDelimiter = ","

// ImportResult holds the outcome of parsing bulk input
type ImportResult struct {
	Records  []domain.Record
	Rejected int
}

// ParseLine splits one "front, back" line. It reports false unless the
// line has exactly two fields that are non-empty after trimming.
func ParseLine(line string) (domain.Record, bool) {
	fields := strings.Split(line, importDelimiter)
	if len(fields) != 2 {
		return domain.Record{}, false
	}

	front := strings.TrimSpace(fields[0])
	back := strings.TrimSpace(fields[1])
	if front == "" || back == "" {
		return domain.Record{}, false
	}

	return domain.Record{Front: front, Back: back}, true
}

// ParseBulk parses one pair per line. Blank lines are skipped, malformed
// lines are counted in Rejected. Returns domain.ErrNoValidData along with
// the result when no line was valid.
func ParseBulk(raw string) (ImportResult, error) {
	var result ImportResult

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, ok := ParseLine(line)
		if !ok {
			result.Rejected++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if len(result.Records) == 0 {
		return result, domain.ErrNoValidData
	}
	return result, nil
}
