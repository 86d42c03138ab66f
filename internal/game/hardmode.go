// apps/go-term/internal/game/hardmode.go
//
// Hard-mode validation of a candidate against the round so far.
// Rules (first violation wins):
//   - every letter revealed as Misplaced/Correct must appear;
//   - a letter may not be retried at a position where it was not Correct;
//   - a Correct position must keep its letter;
//   - a letter the keyboard shows as Wrong may not be used.

package game

// ValidateHard checks candidate against everything revealed so far in the
// round. It returns nil to accept, or a *HardModeError naming the first
// offending letter/position.
//
// Order: revealed letters must be used; then, for every prior row and
// position, no retrying a letter where it was not correct, no moving a
// confirmed letter, and no letters already shown absent.
func ValidateHard(history []RowResult, kb Keyboard, candidate Word) error {
	for i, st := range kb {
		c := byte('a' + i)
		if (st == Correct || st == Misplaced) && !candidate.Contains(c) {
			return &HardModeError{Rule: RuleMustUse, Letter: c, Position: -1}
		}
	}

	for _, row := range history {
		for j := 0; j < WordLen; j++ {
			prev, cur := row.Guess[j], candidate[j]
			locked := row.Marks[j] == Correct
			switch {
			case cur == prev && !locked:
				return &HardModeError{Rule: RuleWrongPosition, Letter: cur, Position: j}
			case cur != prev && locked:
				return &HardModeError{Rule: RuleMustKeep, Letter: prev, Position: j}
			}
			if kb.Status(cur) == Wrong {
				return &HardModeError{Rule: RuleAbsent, Letter: cur, Position: j}
			}
		}
	}
	return nil
}
