// apps/go-term/internal/game/engine.go
//
// Guess scoring for a single row.
// Responsibilities:
//   - Count letter frequencies of a word (a–z).
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Fold a scored row into the keyboard's best-known letter status.
//
// Notes:
//   - Inputs are validated by ParseWord / the Round; Evaluate panics on
//     malformed words rather than guessing what the caller meant.

package game

import "fmt"

// LetterCount returns how many times each letter a–z occurs in w.
func LetterCount(w Word) [AlphabetLen]int {
	var freq [AlphabetLen]int
	for _, c := range w {
		freq[idx(c)]++
	}
	return freq
}

// Evaluate scores guess against target.
//
// Pass 1:
//   - Mark exact matches as Correct and consume that letter from the
//     target's remaining supply.
//
// Pass 2:
//   - For each non‑correct guess letter: if supply remains, mark Misplaced
//     and decrement it; otherwise mark Wrong.
//
// A letter guessed twice against a target holding it once earns exactly
// one Correct/Misplaced mark, and Correct always wins the supply first.
func Evaluate(target, guess Word) Marks {
	if !target.Valid() || !guess.Valid() {
		panic(fmt.Sprintf("game: evaluate on malformed words %q / %q", target[:], guess[:]))
	}

	var res Marks
	remaining := LetterCount(target)

	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			res[i] = Correct
			remaining[idx(guess[i])]--
		}
	}

	for i := 0; i < WordLen; i++ {
		if res[i] == Correct {
			continue
		}
		j := idx(guess[i])
		if remaining[j] > 0 {
			res[i] = Misplaced
			remaining[j]--
		} else {
			res[i] = Wrong
		}
	}
	return res
}

// Merge folds a row into the keyboard. A letter only ever moves up the
// Correct > Misplaced > Wrong > Blank order; later rows never downgrade it.
func (k *Keyboard) Merge(row RowResult) {
	for i, c := range row.Guess {
		j := idx(c)
		k[j] = k[j].Max(row.Marks[i])
	}
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(c byte) int { return int(c - 'a') }

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}
