// apps/go-term/internal/game/types.go
//
// Core type definitions for the Wordle round engine.
// Defines:
//   - Classification: per-letter result of a guess (blank/wrong/misplaced/correct).
//   - Word: a fixed-length guess or target.
//   - RowResult: one accepted guess with its classifications.
//   - Keyboard: best-known classification per alphabet letter.
//   - Outcome/Phase: how a round ends.

package game

import (
	"fmt"
	"strings"
)

const (
	// WordLen is the number of letters in every target and guess.
	WordLen = 5
	// RowCount is the number of guesses allowed per round.
	RowCount = 6
	// AlphabetLen is the size of the single-case alphabet a..z.
	AlphabetLen = 26
)

// Classification is the evaluation result for a single letter.
// Values are ordered: Correct > Misplaced > Wrong > Blank.
type Classification uint8

const (
	Blank     Classification = iota // no guess yet at this position
	Wrong                           // letter absent, or its supply already used up
	Misplaced                       // letter present elsewhere in the target
	Correct                         // letter present at exactly this position
)

var classificationNames = [...]string{"blank", "wrong", "misplaced", "correct"}

func (c Classification) String() string {
	if int(c) < len(classificationNames) {
		return classificationNames[c]
	}
	return fmt.Sprintf("classification(%d)", uint8(c))
}

// MarshalText encodes a classification as its lowercase name.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Max returns the better of c and o.
func (c Classification) Max(o Classification) Classification {
	if o > c {
		return o
	}
	return c
}

// Word is a fixed-length sequence of alphabet letters.
type Word [WordLen]byte

// ParseWord lowercases and trims s, then checks it is WordLen letters a–z.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen || !isAlpha(s) {
		return w, fmt.Errorf("%q: %w", s, ErrInvalidGuess)
	}
	copy(w[:], s)
	return w, nil
}

// MustWord is ParseWord for literals known to be valid.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return string(w[:]) }

// Valid reports whether every byte of w is in a–z.
func (w Word) Valid() bool {
	for _, c := range w {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

// Contains reports whether letter c appears anywhere in w.
func (w Word) Contains(c byte) bool {
	for _, x := range w {
		if x == c {
			return true
		}
	}
	return false
}

// Marks is the per-position classification of one guess.
type Marks [WordLen]Classification

// RowResult is one accepted guess together with its classifications.
type RowResult struct {
	Guess Word
	Marks Marks
}

// Won reports whether every position is Correct.
func (r RowResult) Won() bool {
	for _, m := range r.Marks {
		if m != Correct {
			return false
		}
	}
	return true
}

// Keyboard is the best-known classification for each letter a–z.
type Keyboard [AlphabetLen]Classification

// Status returns the classification for letter c.
func (k *Keyboard) Status(c byte) Classification { return k[idx(c)] }

// Reset sets every letter back to Blank.
func (k *Keyboard) Reset() { *k = Keyboard{} }

// Map returns the non-blank letters keyed by their single-letter string.
func (k *Keyboard) Map() map[string]Classification {
	out := make(map[string]Classification)
	for i, c := range k {
		if c != Blank {
			out[string(rune('a'+i))] = c
		}
	}
	return out
}

// OutcomeKind says how a round terminated.
type OutcomeKind uint8

const (
	OutcomeWon OutcomeKind = iota + 1
	OutcomeLost
	OutcomeAbandoned
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Outcome is reported to the statistics recorder when a round ends.
// Row is the zero-based row of the winning guess and is only meaningful for OutcomeWon.
type Outcome struct {
	RoundID string
	Kind    OutcomeKind
	Row     int
	Target  Word
	Hard    bool
}

// Phase is the round state machine's current state.
type Phase uint8

const (
	PhaseAwaiting Phase = iota
	PhaseWon
	PhaseLost
	PhaseAbandoned
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaiting:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseAbandoned:
		return "abandoned"
	case PhaseQuit:
		return "quit"
	}
	return "unknown"
}

// Terminal reports whether no further events are accepted.
func (p Phase) Terminal() bool { return p != PhaseAwaiting }
