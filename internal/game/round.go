// apps/go-term/internal/game/round.go
//
// Round state machine for one target word.
// Responsibilities:
//   - Assemble a candidate from decoded input events.
//   - Reject short/unknown/hard-mode-violating candidates without losing history.
//   - Score accepted guesses, update the keyboard, and advance rows.
//   - Track transitions: playing → won/lost/abandoned (or quit).
//
// Notes:
//   - Rendering, notices and statistics are pushed to collaborators; the
//     round itself never blocks and holds no global state.
//   - A Round is not safe for concurrent use.

package game

import (
	"fmt"
	"strings"
)

// EventKind enumerates decoded input events.
type EventKind uint8

const (
	EventLetter EventKind = iota + 1
	EventBackspace
	EventConfirm
	EventCancel // abandon this round and start a new one
	EventQuit   // leave the program
)

// Event is one already-decoded key press.
type Event struct {
	Kind   EventKind
	Letter byte // set for EventLetter
}

// Letter builds an EventLetter for c.
func Letter(c byte) Event { return Event{Kind: EventLetter, Letter: c} }

var (
	Backspace = Event{Kind: EventBackspace}
	Confirm   = Event{Kind: EventConfirm}
	Cancel    = Event{Kind: EventCancel}
	Quit      = Event{Kind: EventQuit}
)

// Dictionary answers whether a string is an acceptable guess.
type Dictionary interface {
	IsValid(word string) bool
}

// Sink receives everything a host needs to draw the round.
type Sink interface {
	// RenderRow draws a row. letters is empty and marks all Blank for a placeholder row.
	RenderRow(row int, marks Marks, letters string)
	RenderKeyboard(kb Keyboard)
	Notify(msg string)
	// Reveal shows the target once the round is over.
	Reveal(target Word)
}

// Recorder tallies finished rounds.
type Recorder interface {
	RecordOutcome(o Outcome)
}

// NopSink discards all rendering.
type NopSink struct{}

func (NopSink) RenderRow(int, Marks, string) {}
func (NopSink) RenderKeyboard(Keyboard) {}
func (NopSink) Notify(string) {}
func (NopSink) Reveal(Word) {}

// Config wires a Round to its collaborators. Sink and Recorder may be nil.
type Config struct {
	ID       string
	Hard     bool
	Dict     Dictionary
	Sink     Sink
	Recorder Recorder
}

// Round holds the state of one target word from selection to finish.
type Round struct {
	id        string
	target    Word
	hard      bool
	dict      Dictionary
	sink      Sink
	rec       Recorder
	phase     Phase
	row       int
	history   []RowResult
	keyboard  Keyboard
	candidate []byte
}

// NewRound starts a round at row 0 with a blank keyboard and draws the
// initial keyboard and placeholder row.
func NewRound(target Word, cfg Config) *Round {
	if !target.Valid() {
		panic(fmt.Sprintf("game: invalid target %q", target[:]))
	}
	if cfg.Dict == nil {
		panic("game: round needs a dictionary")
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NopSink{}
	}
	r := &Round{
		id:        cfg.ID,
		target:    target,
		hard:      cfg.Hard,
		dict:      cfg.Dict,
		sink:      sink,
		rec:       cfg.Recorder,
		history:   make([]RowResult, 0, RowCount),
		candidate: make([]byte, 0, WordLen),
	}
	r.keyboard.Reset()
	r.sink.RenderKeyboard(r.keyboard)
	r.sink.RenderRow(0, Marks{}, "")
	return r
}

func (r *Round) ID() string { return r.id }
func (r *Round) Target() Word { return r.target }
func (r *Round) Hard() bool { return r.hard }
func (r *Round) Phase() Phase { return r.phase }
func (r *Round) Row() int { return r.row }
func (r *Round) Keyboard() Keyboard { return r.keyboard }
func (r *Round) Candidate() string { return string(r.candidate) }

// History returns a copy of the accepted rows so far.
func (r *Round) History() []RowResult {
	return append([]RowResult(nil), r.history...)
}

// Handle applies one input event.
// Returns the phase after the event and, for rejected input, the reason
// (which is also sent to the sink as a notice).
func (r *Round) Handle(ev Event) (Phase, error) {
	if r.phase.Terminal() {
		return r.phase, ErrRoundOver
	}
	switch ev.Kind {
	case EventQuit:
		r.phase = PhaseQuit
	case EventCancel:
		r.finish(PhaseAbandoned)
	case EventBackspace:
		if n := len(r.candidate); n > 0 {
			r.candidate = r.candidate[:n-1]
		}
	case EventLetter:
		if !isLetter(ev.Letter) {
			return r.reject(fmt.Errorf("%q: %w", ev.Letter, ErrInvalidGuess))
		}
		if len(r.candidate) == WordLen {
			return r.reject(ErrTooLong)
		}
		r.candidate = append(r.candidate, ev.Letter)
	case EventConfirm:
		return r.confirm()
	default:
		return r.phase, fmt.Errorf("game: unknown event kind %d", ev.Kind)
	}
	return r.phase, nil
}

// Guess submits a whole word: it replaces the candidate, types each letter
// and confirms. Used by hosts that receive complete words.
func (r *Round) Guess(word string) (Phase, error) {
	if r.phase.Terminal() {
		return r.phase, ErrRoundOver
	}
	w, err := ParseWord(word)
	if err != nil {
		return r.reject(err)
	}
	r.candidate = r.candidate[:0]
	for _, c := range w {
		if _, err := r.Handle(Letter(c)); err != nil {
			return r.phase, err
		}
	}
	return r.Handle(Confirm)
}

func (r *Round) confirm() (Phase, error) {
	if len(r.candidate) < WordLen {
		return r.reject(ErrIncomplete)
	}
	var guess Word
	copy(guess[:], r.candidate)

	if !r.dict.IsValid(guess.String()) {
		r.clearCandidate()
		return r.reject(fmt.Errorf("'%s': %w", guess, ErrNotAWord))
	}
	if r.hard {
		if err := ValidateHard(r.history, r.keyboard, guess); err != nil {
			r.clearCandidate()
			return r.reject(err)
		}
	}

	res := RowResult{Guess: guess, Marks: Evaluate(r.target, guess)}
	r.history = append(r.history, res)
	r.keyboard.Merge(res)
	r.candidate = r.candidate[:0]
	r.sink.RenderRow(r.row, res.Marks, guess.String())
	r.sink.RenderKeyboard(r.keyboard)

	switch {
	case guess == r.target:
		r.finish(PhaseWon)
	case r.row == RowCount-1:
		r.finish(PhaseLost)
	default:
		r.row++
		r.sink.RenderRow(r.row, Marks{}, "")
	}
	return r.phase, nil
}

// clearCandidate empties the candidate and redraws the current row blank.
func (r *Round) clearCandidate() {
	r.candidate = r.candidate[:0]
	r.sink.RenderRow(r.row, Marks{}, "")
}

func (r *Round) reject(err error) (Phase, error) {
	r.sink.Notify(err.Error())
	return r.phase, err
}

// finish moves to a terminal phase, reports the outcome and reveals the target.
func (r *Round) finish(p Phase) {
	r.phase = p
	o := Outcome{RoundID: r.id, Row: r.row, Target: r.target, Hard: r.hard}
	switch p {
	case PhaseWon:
		o.Kind = OutcomeWon
	case PhaseLost:
		o.Kind = OutcomeLost
	default:
		o.Kind = OutcomeAbandoned
	}
	if r.rec != nil {
		r.rec.RecordOutcome(o)
	}
	r.sink.Reveal(r.target)
}

// String renders the board as text rows, e.g. "crane CCMWW".
func (r *Round) String() string {
	var b strings.Builder
	for _, row := range r.history {
		b.WriteString(row.Guess.String())
		b.WriteByte(' ')
		for _, m := range row.Marks {
			b.WriteByte(markLetters[m])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var markLetters = [...]byte{Blank: '.', Wrong: 'W', Misplaced: 'M', Correct: 'C'}
