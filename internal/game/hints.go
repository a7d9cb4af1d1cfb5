// internal/game/hints.go
//
// Hint progression: maps attempt count to how much of the obscured puzzle
// media is revealed and which pre-authored hint line is unlocked.

package game

// RevealPercent returns the image/silhouette reveal percentage after
// attempts wrong guesses. It grows linearly with each attempt, caps at 100,
// and jumps straight to 100 once the session is terminal.
func RevealPercent(attempts, maxAttempts int, terminal bool) int {
	if terminal {
		return 100
	}
	if maxAttempts <= 0 {
		return 100
	}
	p := attempts * 100 / maxAttempts
	if p > 100 {
		return 100
	}
	return p
}

// HintText returns the hint unlocked after attempts guesses. Each wrong
// guess exposes the next hint in order; the index never regresses and never
// skips ahead, and the final hint repeats once the list is exhausted.
// Returns false before the first guess or when no hints are authored.
func HintText(attempts int, hints []string) (string, bool) {
	if attempts < 1 || len(hints) == 0 {
		return "", false
	}
	i := attempts - 1
	if i >= len(hints) {
		i = len(hints) - 1
	}
	return hints[i], true
}
