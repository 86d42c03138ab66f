package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
	"github.com/robalobadob/wordle/apps/go-term/internal/tui"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	cmd, err := parseFlags(cfg, os.Args[1:], os.Stderr)
	if err != nil {
		fatal(err)
	}

	logFile, err := setupLogging(cfg.Log, cmd == cmdServe)
	if err != nil {
		fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	dict, err := loadDictionary(cfg.Game.WordList)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Game.WordList).Msg("failed to load word list")
	}
	log.Info().Str("path", cfg.Game.WordList).Int("words", dict.Len()).Msg("word list loaded")

	st, err := stats.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open statistics")
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case cmdServe:
		err = serve(ctx, cfg, dict, st)
	default:
		err = play(ctx, cfg, dict, st)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("exited")
	}
}

func play(ctx context.Context, cfg *config.Config, dict *words.Dictionary, st *stats.Store) error {
	next, err := targets(cfg.Game, dict, time.Now)
	if err != nil {
		return err
	}
	return tui.Run(ctx, tui.Options{
		Dict:   dict,
		Next:   next,
		Hard:   cfg.Game.Hard,
		Stats:  st,
		Single: cfg.Game.SingleRound(),
		Theme:  tui.NewTheme(cfg.Term.Color, os.Stdout),
	})
}

func serve(ctx context.Context, cfg *config.Config, dict *words.Dictionary, st *stats.Store) error {
	srv := httpserver.New(httpserver.Deps{
		Store:     store.NewMemoryStore(),
		Dict:      dict,
		Stats:     st,
		Rand:      newRand(),
		Tokens:    httpserver.NewTokens(cfg.Server.TokenSecret, cfg.Server.TokenTTL),
		DailySalt: cfg.Game.DailySalt,
		Timeout:   cfg.Server.Timeout,
	})
	port := strconv.Itoa(cfg.Server.Port)
	log.Info().Str("port", port).Msg("starting cordl server")
	return srv.Start(ctx, ":"+port)
}

// targets returns the supplier of round targets: a fixed word, the daily
// word, or a uniform draw from the dictionary.
func targets(g config.GameConfig, dict *words.Dictionary, now func() time.Time) (func() game.Word, error) {
	switch {
	case g.Word != "":
		i, ok := dict.Index(g.Word)
		if !ok {
			return nil, fmt.Errorf("%q: %w", g.Word, game.ErrNotAWord)
		}
		w := dict.At(i)
		return func() game.Word { return w }, nil
	case g.Daily:
		return func() game.Word { return daily.Word(dict, now(), g.DailySalt) }, nil
	}
	rng := newRand()
	return func() game.Word { return dict.Pick(rng) }, nil
}

// newRand seeds a PCG generator from the clock and the process ID.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
}

func loadDictionary(path string) (*words.Dictionary, error) {
	if path == "" {
		return words.Embedded()
	}
	return words.Load(path)
}

// setupLogging configures the global zerolog logger. The HTTP host logs to
// stderr; the terminal host owns the screen, so it logs to LOG_FILE and
// otherwise lets only fatal errors through.
func setupLogging(lc config.LogConfig, toStderr bool) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	switch {
	case lc.File != "":
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return f, nil
	case toStderr:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	default:
		// a disabled logger would swallow log.Fatal's exit too
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.FatalLevel)
	}
	return nil, nil
}

// fatal reports a startup error before logging is configured. A help
// request has already printed usage and exits cleanly.
func fatal(err error) {
	code := exitStatus(err)
	if code != 0 {
		fmt.Fprintf(os.Stderr, "cordl: %v\n", err)
	}
	os.Exit(code)
}

// exitStatus maps a startup error to the process exit code.
func exitStatus(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}
