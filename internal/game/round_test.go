package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setDict map[string]struct{}

func (d setDict) IsValid(w string) bool { _, ok := d[w]; return ok }

func dictOf(words ...string) setDict {
	d := setDict{}
	for _, w := range words {
		d[w] = struct{}{}
	}
	return d
}

type renderedRow struct {
	row     int
	marks   Marks
	letters string
}

type recordingSink struct {
	rows      []renderedRow
	keyboards []Keyboard
	notices   []string
	revealed  []Word
}

func (s *recordingSink) RenderRow(row int, marks Marks, letters string) {
	s.rows = append(s.rows, renderedRow{row, marks, letters})
}
func (s *recordingSink) RenderKeyboard(kb Keyboard) { s.keyboards = append(s.keyboards, kb) }
func (s *recordingSink) Notify(msg string)          { s.notices = append(s.notices, msg) }
func (s *recordingSink) Reveal(target Word)         { s.revealed = append(s.revealed, target) }

type recordingRecorder struct{ outcomes []Outcome }

func (r *recordingRecorder) RecordOutcome(o Outcome) { r.outcomes = append(r.outcomes, o) }

var testDict = dictOf("crane", "grape", "crage", "react", "trace", "built", "moist", "plumb", "dizzy", "fjord", "lolly", "allot")

func newTestRound(t *testing.T, target string, hard bool) (*Round, *recordingSink, *recordingRecorder) {
	t.Helper()
	sink := &recordingSink{}
	rec := &recordingRecorder{}
	r := NewRound(MustWord(target), Config{ID: "r1", Hard: hard, Dict: testDict, Sink: sink, Recorder: rec})
	return r, sink, rec
}

func typeWord(t *testing.T, r *Round, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		_, err := r.Handle(Letter(s[i]))
		require.NoError(t, err)
	}
}

func TestNewRound_RendersInitialState(t *testing.T) {
	r, sink, _ := newTestRound(t, "crane", false)

	assert.Equal(t, PhaseAwaiting, r.Phase())
	assert.Equal(t, 0, r.Row())
	require.Len(t, sink.keyboards, 1)
	assert.Equal(t, Keyboard{}, sink.keyboards[0])
	require.Len(t, sink.rows, 1)
	assert.Equal(t, renderedRow{row: 0}, sink.rows[0])
}

func TestRound_WinOnFirstRow(t *testing.T) {
	r, sink, rec := newTestRound(t, "crane", false)

	typeWord(t, r, "crane")
	phase, err := r.Handle(Confirm)
	require.NoError(t, err)

	assert.Equal(t, PhaseWon, phase)
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, Outcome{RoundID: "r1", Kind: OutcomeWon, Row: 0, Target: MustWord("crane")}, rec.outcomes[0])
	assert.Equal(t, []Word{MustWord("crane")}, sink.revealed)
	require.Len(t, r.History(), 1)
	assert.True(t, r.History()[0].Won())
}

func TestRound_WinOnLaterRow(t *testing.T) {
	r, _, rec := newTestRound(t, "crane", false)

	for _, g := range []string{"built", "moist"} {
		phase, err := r.Guess(g)
		require.NoError(t, err)
		assert.Equal(t, PhaseAwaiting, phase)
	}
	phase, err := r.Guess("crane")
	require.NoError(t, err)
	assert.Equal(t, PhaseWon, phase)
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, 2, rec.outcomes[0].Row)
}

func TestRound_LostAfterSixMisses(t *testing.T) {
	r, sink, rec := newTestRound(t, "crane", false)

	guesses := []string{"built", "moist", "plumb", "dizzy", "fjord", "lolly"}
	for i, g := range guesses {
		phase, err := r.Guess(g)
		require.NoError(t, err)
		if i < len(guesses)-1 {
			assert.Equal(t, PhaseAwaiting, phase)
			assert.Equal(t, i+1, r.Row())
		} else {
			assert.Equal(t, PhaseLost, phase)
		}
	}

	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, OutcomeLost, rec.outcomes[0].Kind)
	assert.Len(t, r.History(), RowCount)
	assert.Equal(t, []Word{MustWord("crane")}, sink.revealed)

	_, err := r.Guess("crane")
	assert.ErrorIs(t, err, ErrRoundOver)
	_, err = r.Handle(Letter('a'))
	assert.ErrorIs(t, err, ErrRoundOver)
}

func TestRound_ShortWordStaysOnRow(t *testing.T) {
	r, sink, rec := newTestRound(t, "crane", false)

	typeWord(t, r, "cra")
	phase, err := r.Handle(Confirm)

	require.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, PhaseAwaiting, phase)
	assert.Equal(t, 0, r.Row())
	assert.Empty(t, r.History())
	assert.Equal(t, "cra", r.Candidate(), "short candidate stays editable")
	assert.Equal(t, []string{"word too short"}, sink.notices)
	assert.Empty(t, rec.outcomes)
}

func TestRound_UnknownWordClearsCandidate(t *testing.T) {
	r, sink, _ := newTestRound(t, "crane", false)

	typeWord(t, r, "zzzzz")
	_, err := r.Handle(Confirm)

	require.ErrorIs(t, err, ErrNotAWord)
	assert.Equal(t, "", r.Candidate())
	assert.Equal(t, 0, r.Row())
	assert.Empty(t, r.History())
	assert.Equal(t, []string{"'zzzzz': not a word"}, sink.notices)
}

func TestRound_EditingEvents(t *testing.T) {
	r, _, _ := newTestRound(t, "crane", false)

	_, err := r.Handle(Backspace)
	require.NoError(t, err, "backspace on empty candidate is a no-op")
	assert.Equal(t, "", r.Candidate())

	typeWord(t, r, "crant")
	_, err = r.Handle(Letter('x'))
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, "crant", r.Candidate())

	_, err = r.Handle(Backspace)
	require.NoError(t, err)
	typeWord(t, r, "e")
	assert.Equal(t, "crane", r.Candidate())

	_, err = r.Handle(Letter('A'))
	assert.ErrorIs(t, err, ErrInvalidGuess)
}

func TestRound_HardModeRejectionKeepsHistory(t *testing.T) {
	r, sink, _ := newTestRound(t, "crane", true)

	_, err := r.Guess("grape")
	require.NoError(t, err)

	phase, err := r.Guess("crage")
	require.ErrorIs(t, err, ErrHardMode)
	assert.Equal(t, PhaseAwaiting, phase)
	assert.Equal(t, 1, r.Row())
	assert.Len(t, r.History(), 1)
	assert.Equal(t, "", r.Candidate())
	assert.Equal(t, "g already confirmed absent", sink.notices[len(sink.notices)-1])

	phase, err = r.Guess("crane")
	require.NoError(t, err)
	assert.Equal(t, PhaseWon, phase)
}

func TestRound_EasyModeIgnoresConstraints(t *testing.T) {
	r, _, _ := newTestRound(t, "crane", false)

	_, err := r.Guess("grape")
	require.NoError(t, err)
	_, err = r.Guess("crage")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Row())
}

func TestRound_CancelAbandons(t *testing.T) {
	r, sink, rec := newTestRound(t, "crane", false)

	_, err := r.Guess("grape")
	require.NoError(t, err)
	phase, err := r.Handle(Cancel)
	require.NoError(t, err)

	assert.Equal(t, PhaseAbandoned, phase)
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, OutcomeAbandoned, rec.outcomes[0].Kind)
	assert.Equal(t, []Word{MustWord("crane")}, sink.revealed)
}

func TestRound_QuitRecordsNothing(t *testing.T) {
	r, sink, rec := newTestRound(t, "crane", false)

	phase, err := r.Handle(Quit)
	require.NoError(t, err)
	assert.Equal(t, PhaseQuit, phase)
	assert.Empty(t, rec.outcomes)
	assert.Empty(t, sink.revealed)
}

func TestRound_RendersRowsAndKeyboard(t *testing.T) {
	r, sink, _ := newTestRound(t, "crane", false)

	_, err := r.Guess("react")
	require.NoError(t, err)

	// initial placeholder, scored row 0, placeholder row 1
	require.Len(t, sink.rows, 3)
	assert.Equal(t, renderedRow{row: 0, marks: Marks{M, M, C, M, W}, letters: "react"}, sink.rows[1])
	assert.Equal(t, renderedRow{row: 1}, sink.rows[2])

	require.Len(t, sink.keyboards, 2)
	kb := sink.keyboards[1]
	assert.Equal(t, Correct, kb.Status('a'))
	assert.Equal(t, Wrong, kb.Status('t'))
	assert.Equal(t, "react MMCMW\n", r.String())
}

func TestRound_GuessRejectsMalformed(t *testing.T) {
	r, _, _ := newTestRound(t, "crane", false)

	_, err := r.Guess("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	_, err = r.Guess("cranes")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	assert.Equal(t, 0, r.Row())
}
