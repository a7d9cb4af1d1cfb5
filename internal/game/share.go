// internal/game/share.go
//
// Share-text rendering. The template is fixed for parity with the web
// clients' share buttons:
//
//   {GameName} #{puzzleNumber} {attempts|X}/{maxAttempts}
//   {emoji grid}
//   Play daily at {url}
//
// Correct = 🟩, Present = 🟨, Absent = ⬜, one row per attempt.

package game

import (
	"fmt"
	"strings"
)

// ShareText renders the shareable result for a terminal session.
func ShareText(gameName string, number int, s *Session, url string) string {
	score := "X"
	if s.State == StateWon {
		score = fmt.Sprintf("%d", len(s.Attempts))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d %s/%d\n", gameName, number, score, s.MaxAttempts)
	for _, att := range s.Attempts {
		b.WriteString(emojiRow(att))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Play daily at %s", url)
	return b.String()
}

// emojiRow renders one attempt as its emoji squares. Attribute games use
// the per-field marks in schema order.
func emojiRow(att Attempt) string {
	marks := att.Marks
	if len(marks) == 0 {
		marks = make([]Mark, 0, len(att.AttrMarks))
		for _, am := range att.AttrMarks {
			marks = append(marks, am.Mark)
		}
	}
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case MarkHit:
			b.WriteString("🟩")
		case MarkPresent:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return b.String()
}
