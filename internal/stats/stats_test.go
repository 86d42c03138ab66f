package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func outcome(kind game.OutcomeKind, row int) game.Outcome {
	return game.Outcome{RoundID: "r", Kind: kind, Row: row, Target: game.MustWord("crane")}
}

func TestStore_EmptyHistogram(t *testing.T) {
	s := openStore(t)

	h, err := s.Histogram(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Histogram{}, h)
	assert.Equal(t, 0, h.Played())
}

func TestStore_Histogram(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, o := range []game.Outcome{
		outcome(game.OutcomeWon, 0),
		outcome(game.OutcomeWon, 3),
		outcome(game.OutcomeWon, 3),
		outcome(game.OutcomeLost, 5),
		outcome(game.OutcomeAbandoned, 2),
	} {
		require.NoError(t, s.Record(ctx, o))
	}

	h, err := s.Histogram(ctx)
	require.NoError(t, err)
	assert.Equal(t, [game.RowCount]int{1, 0, 0, 2, 0, 0}, h.Won)
	assert.Equal(t, 1, h.Lost)
	assert.Equal(t, 3, h.Wins())
	assert.Equal(t, 4, h.Played())
	assert.Equal(t, 2, h.Bucket(3))
	assert.Equal(t, 1, h.Bucket(game.RowCount))

	n, err := s.Abandoned(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_LossBucketIncrementsByOne(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	before, err := s.Histogram(ctx)
	require.NoError(t, err)

	s.RecordOutcome(outcome(game.OutcomeLost, 5))

	after, err := s.Histogram(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Lost+1, after.Lost)
	assert.Equal(t, before.Won, after.Won)
}

func TestStore_Streak(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	streak, err := s.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	s.RecordOutcome(outcome(game.OutcomeWon, 1))
	s.RecordOutcome(outcome(game.OutcomeLost, 5))
	s.RecordOutcome(outcome(game.OutcomeWon, 2))
	s.RecordOutcome(outcome(game.OutcomeAbandoned, 0))
	s.RecordOutcome(outcome(game.OutcomeWon, 4))

	streak, err = s.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, streak, "abandoned rounds do not break a streak")
}

func TestStore_IsolatedPerOpen(t *testing.T) {
	a := openStore(t)
	b := openStore(t)
	ctx := context.Background()

	require.NoError(t, a.Record(ctx, outcome(game.OutcomeWon, 0)))

	h, err := b.Histogram(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Played())
}

func TestStore_RecordsRoundOutcome(t *testing.T) {
	s := openStore(t)

	dict := setDict{"crane": {}, "grape": {}}
	r := game.NewRound(game.MustWord("crane"), game.Config{ID: "x", Dict: dict, Recorder: s})
	_, err := r.Guess("grape")
	require.NoError(t, err)
	_, err = r.Guess("crane")
	require.NoError(t, err)

	h, err := s.Histogram(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, h.Won[1])
}

type setDict map[string]struct{}

func (d setDict) IsValid(w string) bool {
	_, ok := d[w]
	return ok
}
