package handler

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/service"
)

// Telegram caps a message at 4096 UTF-16 code units. The list stops
// adding lines at maxListLength and leaves listTailReserve for the tail.
const (
	maxListLength   = 4000
	listTailReserve = 80
)

var statusIcons = map[domain.Status]string{
	domain.StatusMastered:   "🎉",
	domain.StatusInProgress: "✏️",
	domain.StatusNotStarted: "🔴",
}

func formatQuestion(q domain.Question) string {
	hint := "front → back"
	if q.Direction == domain.Reverse {
		hint = "back → front"
	}
	return fmt.Sprintf("❓ %s\n\nDirection: %s\nType your answer:", q.Prompt(), hint)
}

func formatResult(r domain.GradeResult) string {
	if r.Correct {
		return fmt.Sprintf("✅ Correct!\n\nMastery: %d", r.Word.MasteryCount)
	}
	return fmt.Sprintf("❌ Wrong. The answer is: %s\n\nMastery: %d", r.Expected, r.Word.MasteryCount)
}

func formatList(entries []domain.ListEntry, sum service.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 Words: %d (mastered %d, in progress %d, not started %d)\n\n",
		sum.Total, sum.Mastered, sum.InProgress, sum.NotStarted)

	size := messageLength(b.String())
	for i, e := range entries {
		line := fmt.Sprintf("%s %s — %s (%s / count: %d)\n",
			statusIcons[e.Status], e.Word.Front, e.Word.Back, e.Status, e.Word.MasteryCount)

		n := messageLength(line)
		if size+n > maxListLength-listTailReserve {
			fmt.Fprintf(&b, "\n…and %d more, use /export for the full list", len(entries)-i)
			break
		}
		b.WriteString(line)
		size += n
	}

	return b.String()
}

// messageLength counts s the way Telegram does, in UTF-16 code units
func messageLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func formatImport(result service.ImportResult) string {
	return fmt.Sprintf("📥 Imported: %d\nRejected lines: %d", len(result.Records), result.Rejected)
}
