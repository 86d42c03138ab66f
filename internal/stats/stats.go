// apps/go-term/internal/stats/stats.go
//
// Session statistics: a histogram of rounds won on row 1..6 plus a miss
// bucket, accumulated for the lifetime of the process.
//
// Notes:
//   - Backed by an in-memory SQLite database; statistics vanish on exit.
//   - Abandoned rounds are recorded but never counted as won or lost.
//   - Store implements game.Recorder.

package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Histogram holds per-row wins and the miss bucket.
type Histogram struct {
	Won  [game.RowCount]int `json:"won"`
	Lost int                `json:"lost"`
}

// Played counts won and lost rounds.
func (h Histogram) Played() int { return h.Wins() + h.Lost }

// Wins counts won rounds across all rows.
func (h Histogram) Wins() int {
	n := 0
	for _, v := range h.Won {
		n += v
	}
	return n
}

// Bucket returns wins on zero-based row i, or the miss count for i == RowCount.
func (h Histogram) Bucket(i int) int {
	if i == game.RowCount {
		return h.Lost
	}
	return h.Won[i]
}

// Store records outcomes in its own in-memory database.
type Store struct {
	db  *sql.DB
	sb  sq.StatementBuilderType
	now func() time.Time
}

// Open creates an empty statistics store.
func Open() (*Store, error) {
	db, err := openDB()
	if err != nil {
		return nil, fmt.Errorf("stats: open: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("stats: migrate: %w", err)
	}
	return &Store{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now: time.Now,
	}, nil
}

// Close releases the database; all statistics are discarded.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts one finished round.
func (s *Store) Record(ctx context.Context, o game.Outcome) error {
	_, err := s.sb.Insert("outcomes").
		Columns("round_id", "kind", "row_index", "target", "hard", "recorded_at").
		Values(o.RoundID, o.Kind.String(), o.Row, o.Target.String(), o.Hard, s.now().UTC().Format(time.RFC3339)).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("stats: insert outcome: %w", err)
	}
	return nil
}

// RecordOutcome is the game.Recorder hook. Failures are logged, not returned:
// a lost statistic never interrupts play.
func (s *Store) RecordOutcome(o game.Outcome) {
	if err := s.Record(context.Background(), o); err != nil {
		log.Error().Err(err).Str("round", o.RoundID).Str("kind", o.Kind.String()).Msg("record outcome")
		return
	}
	log.Info().Str("round", o.RoundID).Str("kind", o.Kind.String()).Int("row", o.Row+1).Msg("round finished")
}

// Histogram tallies won and lost rounds.
func (s *Store) Histogram(ctx context.Context) (Histogram, error) {
	var h Histogram

	query, args, err := s.sb.Select("kind", "row_index", "COUNT(*)").
		From("outcomes").
		Where(sq.NotEq{"kind": game.OutcomeAbandoned.String()}).
		GroupBy("kind", "row_index").
		ToSql()
	if err != nil {
		return h, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return h, fmt.Errorf("stats: histogram: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind     string
			row, cnt int
		)
		if err := rows.Scan(&kind, &row, &cnt); err != nil {
			return h, err
		}
		switch {
		case kind == game.OutcomeLost.String():
			h.Lost += cnt
		case row >= 0 && row < game.RowCount:
			h.Won[row] += cnt
		}
	}
	return h, rows.Err()
}

// Streak returns the number of consecutive wins ending with the latest
// won-or-lost round.
func (s *Store) Streak(ctx context.Context) (int, error) {
	query, args, err := s.sb.Select("kind").
		From("outcomes").
		Where(sq.NotEq{"kind": game.OutcomeAbandoned.String()}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return 0, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("stats: streak: %w", err)
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var kind string
		if err := rows.Scan(&kind); err != nil {
			return 0, err
		}
		if kind != game.OutcomeWon.String() {
			break
		}
		streak++
	}
	return streak, rows.Err()
}

// Abandoned counts rounds given up with a new-round request.
func (s *Store) Abandoned(ctx context.Context) (int, error) {
	var n int
	query, args, err := s.sb.Select("COUNT(*)").
		From("outcomes").
		Where(sq.Eq{"kind": game.OutcomeAbandoned.String()}).
		ToSql()
	if err != nil {
		return 0, err
	}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats: abandoned: %w", err)
	}
	return n, nil
}
