package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	C = Correct
	M = Misplaced
	W = Wrong
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		guess  string
		want   Marks
	}{
		{"exact match", "crane", "crane", Marks{C, C, C, C, C}},
		{"nothing shared", "crane", "built", Marks{W, W, W, W, W}},
		{"triple guess letter, double target letter", "allot", "lolly", Marks{M, M, C, W, W}},
		{"correct takes supply before misplaced", "crane", "eerie", Marks{W, W, M, W, C}},
		{"double target letter both misplaced", "speed", "abide", Marks{W, W, W, M, M}},
		{"mixed duplicates", "abbey", "kebab", Marks{W, M, C, M, M}},
		{"all same letter", "hello", "lllll", Marks{W, W, C, C, W}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(MustWord(tt.target), MustWord(tt.guess))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Properties(t *testing.T) {
	t.Parallel()

	words := []string{"allot", "lolly", "crane", "eerie", "speed", "abide", "abbey", "kebab", "hello", "lllll", "geese", "eagle"}

	for _, ts := range words {
		for _, gs := range words {
			target, guess := MustWord(ts), MustWord(gs)
			got := Evaluate(target, guess)

			same := 0
			correct := 0
			for i := range target {
				if target[i] == guess[i] {
					same++
				}
				if got[i] == Correct {
					correct++
				}
			}
			assert.Equal(t, same, correct, "correct count for %s/%s", ts, gs)

			tc, gc := LetterCount(target), LetterCount(guess)
			var credited [AlphabetLen]int
			for i, m := range got {
				assert.NotEqual(t, Blank, m)
				if m == Correct || m == Misplaced {
					credited[idx(guess[i])]++
				}
			}
			for l := 0; l < AlphabetLen; l++ {
				assert.LessOrEqual(t, credited[l], min(tc[l], gc[l]), "letter %c in %s/%s", 'a'+l, ts, gs)
			}

			assert.Equal(t, got, Evaluate(target, guess), "evaluate must be deterministic")
		}
	}
}

func TestEvaluate_PanicsOnMalformed(t *testing.T) {
	t.Parallel()

	var bad Word
	copy(bad[:], "ab1de")
	assert.Panics(t, func() { Evaluate(MustWord("crane"), bad) })
	assert.Panics(t, func() { Evaluate(Word{}, MustWord("crane")) })
}

func TestLetterCount(t *testing.T) {
	t.Parallel()

	got := LetterCount(MustWord("lolly"))
	assert.Equal(t, 3, got[idx('l')])
	assert.Equal(t, 1, got[idx('o')])
	assert.Equal(t, 1, got[idx('y')])
	assert.Equal(t, 0, got[idx('a')])
}

func TestParseWord(t *testing.T) {
	t.Parallel()

	w, err := ParseWord("  CRANE ")
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())

	for _, in := range []string{"", "cran", "cranes", "cr4ne", "crané"} {
		_, err := ParseWord(in)
		assert.ErrorIs(t, err, ErrInvalidGuess, "input %q", in)
	}
}

func TestKeyboardMerge_NeverDowngrades(t *testing.T) {
	t.Parallel()

	target := MustWord("crane")
	var kb Keyboard

	steps := []string{"react", "crone", "ccccc", "eerie"}
	prev := kb
	for _, g := range steps {
		guess := MustWord(g)
		kb.Merge(RowResult{Guess: guess, Marks: Evaluate(target, guess)})
		for l := range kb {
			assert.GreaterOrEqual(t, kb[l], prev[l], "letter %c after %s", 'a'+l, g)
		}
		prev = kb
	}

	assert.Equal(t, Correct, kb.Status('c'))
	assert.Equal(t, Correct, kb.Status('e'))
	assert.Equal(t, Correct, kb.Status('r'))
	assert.Equal(t, Wrong, kb.Status('t'))
	assert.Equal(t, Wrong, kb.Status('o'))
	assert.Equal(t, Blank, kb.Status('z'))

	kb.Reset()
	assert.Equal(t, Keyboard{}, kb)
}

func TestKeyboardMap(t *testing.T) {
	t.Parallel()

	var kb Keyboard
	guess := MustWord("grape")
	kb.Merge(RowResult{Guess: guess, Marks: Evaluate(MustWord("crane"), guess)})

	assert.Equal(t, map[string]Classification{
		"g": Wrong, "r": Correct, "a": Correct, "p": Wrong, "e": Correct,
	}, kb.Map())
}

func TestClassificationOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Correct, Misplaced.Max(Correct))
	assert.Equal(t, Correct, Correct.Max(Wrong))
	assert.Equal(t, Misplaced, Wrong.Max(Misplaced))
	assert.Equal(t, Wrong, Blank.Max(Wrong))

	b, err := Misplaced.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "misplaced", string(b))
}
