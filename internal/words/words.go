// apps/go-term/internal/words/words.go
//
// Provides the dictionary the round engine plays against.
//
// Responsibilities:
//   - Load a word list from a file or fall back to the embedded default.
//   - Keep only entries that are exactly WordLen lowercase letters.
//   - Answer membership queries and pick targets uniformly at random.
//
// Word lists:
//   - One word per line; surrounding whitespace is ignored.
//   - No case folding: capitalised entries (proper nouns in system
//     dictionaries such as /usr/share/dict/words) are skipped.
//
// A Dictionary is read-only after construction and safe for concurrent use.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-term/assets"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// ErrEmpty is returned when a source yields no playable words.
var ErrEmpty = errors.New("words: no valid words")

// Rand is the uniform index generator used to pick targets.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Dictionary is an ordered list of playable words plus a lookup set.
type Dictionary struct {
	words []game.Word
	index map[string]int // word → position in words
}

// Load reads a word list from path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return d, nil
}

// Embedded builds the dictionary bundled with the binary.
func Embedded() (*Dictionary, error) {
	list, err := assets.Words()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return FromList(list)
}

// Read loads one word per line from r. Lines of any length are tolerated;
// ones too long to be a word are skipped without being buffered whole.
func Read(r io.Reader) (*Dictionary, error) {
	var list []string
	br := bufio.NewReader(r)
	for {
		line, isPrefix, err := br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isPrefix {
			list = append(list, string(line))
			continue
		}
		// overlong line: drain the rest of it
		for isPrefix {
			if _, isPrefix, err = br.ReadLine(); err != nil {
				if err == io.EOF {
					return FromList(list)
				}
				return nil, err
			}
		}
	}
	return FromList(list)
}

// FromList filters list and builds a Dictionary. Duplicates keep their
// first position.
func FromList(list []string) (*Dictionary, error) {
	d := &Dictionary{index: make(map[string]int, len(list))}
	for _, line := range list {
		w, ok := accept(line)
		if !ok {
			continue
		}
		if _, dup := d.index[w.String()]; dup {
			continue
		}
		d.index[w.String()] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// accept keeps a line only if it is exactly WordLen letters a–z.
func accept(line string) (game.Word, bool) {
	var w game.Word
	s := strings.TrimSpace(line)
	if len(s) != game.WordLen {
		return w, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return w, false
		}
	}
	copy(w[:], s)
	return w, true
}

// IsValid reports whether s is in the dictionary.
func (d *Dictionary) IsValid(s string) bool {
	_, ok := d.index[s]
	return ok
}

// Index returns the position of s, if present.
func (d *Dictionary) Index(s string) (int, bool) {
	i, ok := d.index[s]
	return i, ok
}

// Len returns the number of playable words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the playable words in list order.
func (d *Dictionary) Words() []game.Word {
	return append([]game.Word(nil), d.words...)
}

// At returns the word at position i.
func (d *Dictionary) At(i int) game.Word { return d.words[i] }

// Pick returns a uniformly random word.
func (d *Dictionary) Pick(r Rand) game.Word {
	return d.words[r.IntN(len(d.words))]
}
