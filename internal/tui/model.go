// Package tui is the interactive terminal host: it feeds key presses into
// a game.Round and draws the grid, the keyboard and the session statistics.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
)

// Options configures a terminal session.
type Options struct {
	Dict  game.Dictionary
	Next  func() game.Word // target for each new round
	Hard  bool
	Stats *stats.Store // optional

	// Single ends the session after one round (fixed or daily word).
	Single bool

	Theme Theme
}

// Model is the bubbletea model for a play session.
type Model struct {
	opts  Options
	board *Board
	round *game.Round

	hist   stats.Histogram
	streak int
	last   int // histogram bucket of the last finished round, -1 for none
}

// New starts the first round.
func New(opts Options) *Model {
	m := &Model{opts: opts, board: NewBoard(opts.Theme), last: -1}
	m.refreshStats()
	m.start()
	return m
}

// Run drives a session on the terminal until the player quits, the single
// round ends, or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Round returns the round in play.
func (m *Model) Round() *game.Round { return m.round }

func (m *Model) start() {
	m.board.Reset()
	cfg := game.Config{
		ID:   uuid.NewString(),
		Hard: m.opts.Hard,
		Dict: m.opts.Dict,
		Sink: m.board,
	}
	if m.opts.Stats != nil {
		cfg.Recorder = m.opts.Stats
	}
	m.round = game.NewRound(m.opts.Next(), cfg)
	log.Debug().Str("round", cfg.ID).Bool("hard", cfg.Hard).Msg("round started")
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Round over and the answer is showing: any key moves on.
	if m.round.Phase().Terminal() {
		if key.Type == tea.KeyCtrlC || m.opts.Single {
			return m, tea.Quit
		}
		m.start()
		return m, nil
	}

	ev, ok := decodeKey(key)
	if !ok {
		m.board.ShowHelp()
		return m, nil
	}

	m.board.ClearNotice()
	phase, err := m.round.Handle(ev)
	if err != nil {
		log.Debug().Err(err).Str("round", m.round.ID()).Msg("input rejected")
		return m, nil
	}

	switch phase {
	case game.PhaseQuit:
		return m, tea.Quit
	case game.PhaseWon:
		m.last = m.round.Row()
		m.refreshStats()
	case game.PhaseLost:
		m.last = game.RowCount
		m.refreshStats()
	case game.PhaseAbandoned:
		m.last = -1
		m.refreshStats()
	}
	return m, nil
}

func (m *Model) refreshStats() {
	if m.opts.Stats == nil {
		return
	}
	ctx := context.Background()
	h, err := m.opts.Stats.Histogram(ctx)
	if err != nil {
		log.Error().Err(err).Msg("read histogram")
		return
	}
	streak, err := m.opts.Stats.Streak(ctx)
	if err != nil {
		log.Error().Err(err).Msg("read streak")
		return
	}
	m.hist, m.streak = h, streak
}

func (m *Model) View() string {
	t := m.opts.Theme

	title := t.Bold.Render("cordl")
	if m.opts.Hard {
		title += " " + t.Accent.Render("[hard]")
	}

	typing := m.round.Phase() == game.PhaseAwaiting
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.board.Stats(m.hist, m.streak, m.last),
		"",
		m.board.Keys(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.board.Grid(m.round.Candidate(), typing),
		"    ",
		side,
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", m.board.Footer()) + "\n"
}
