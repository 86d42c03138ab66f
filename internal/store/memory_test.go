package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

type anyWord struct{}

func (anyWord) IsValid(string) bool { return true }

func newRound(id string) *game.Round {
	return game.NewRound(game.MustWord("crane"), game.Config{ID: id, Dict: anyWord{}})
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	r := newRound("abc")
	require.NoError(t, s.Save(ctx, r))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, r, got)

	require.NoError(t, s.Delete(ctx, "abc"))
	_, err = s.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_RejectsMissingID(t *testing.T) {
	assert.Error(t, NewMemoryStore().Save(context.Background(), newRound("")))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, newRound(id)))
			_, err := s.Get(ctx, id)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		_, err := s.Get(ctx, id)
		assert.NoError(t, err)
	}
}
