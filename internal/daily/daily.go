// apps/go-term/internal/daily/daily.go
//
// Word-of-the-day selection. Everyone using the same salt gets the same
// target on the same UTC date.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Source is the slice of dictionary behaviour daily selection needs.
type Source interface {
	Len() int
	At(i int) game.Word
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func Index(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Word returns the target for t from src.
func Word(src Source, t time.Time, salt string) game.Word {
	return src.At(Index(t, salt, src.Len()))
}
