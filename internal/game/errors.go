// apps/go-term/internal/game/errors.go
//
// Error taxonomy for input the round rejects. None of these end a round;
// the round reports them to the caller and to the sink as a notice.

package game

import (
	"errors"
	"fmt"
)

// Input validation failures. All of them leave the round running.
var (
	ErrInvalidGuess = errors.New("invalid guess")
	ErrIncomplete   = errors.New("word too short")
	ErrTooLong      = errors.New("word too long")
	ErrNotAWord     = errors.New("not a word")
	ErrHardMode     = errors.New("hard mode violation")
	ErrRoundOver    = errors.New("round finished")
)

// HardRule identifies which hard-mode constraint a candidate broke.
type HardRule uint8

const (
	RuleMustUse       HardRule = iota + 1 // revealed letter missing from candidate
	RuleWrongPosition                     // letter retried where it was shown not correct
	RuleMustKeep                          // confirmed letter moved off its position
	RuleAbsent                            // letter already shown absent
)

// HardModeError is the rejection reason from ValidateHard.
// Position is zero-based; it is -1 for RuleMustUse.
type HardModeError struct {
	Rule     HardRule
	Letter   byte
	Position int
}

func (e *HardModeError) Error() string {
	switch e.Rule {
	case RuleMustUse:
		return fmt.Sprintf("%c must be used in solution", e.Letter)
	case RuleWrongPosition:
		return fmt.Sprintf("%c already tried in wrong position %d", e.Letter, e.Position+1)
	case RuleMustKeep:
		return fmt.Sprintf("%c must be used in correct position %d", e.Letter, e.Position+1)
	case RuleAbsent:
		return fmt.Sprintf("%c already confirmed absent", e.Letter)
	}
	return ErrHardMode.Error()
}

// Is lets errors.Is(err, ErrHardMode) match any HardModeError.
func (e *HardModeError) Is(target error) bool { return target == ErrHardMode }
