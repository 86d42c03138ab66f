// apps/go-term/flags.go
//
// Command-line parsing. Flags override the loaded configuration; the
// single optional positional argument picks the mode (play or serve).

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
)

const (
	cmdPlay  = "play"
	cmdServe = "serve"
)

// parseFlags applies command-line overrides on top of cfg and returns the
// subcommand. Flags win over the environment and the config file.
func parseFlags(cfg *config.Config, args []string, out io.Writer) (string, error) {
	fs := flag.NewFlagSet("cordl", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: cordl [flags] [play|serve]\n\n")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		config.Usage(out)
	}

	var mono, low, high bool
	fs.StringVar(&cfg.Game.WordList, "w", cfg.Game.WordList, "word list file (default: embedded list)")
	fs.StringVar(&cfg.Game.WordList, "wordlist", cfg.Game.WordList, "long form of -w")
	fs.StringVar(&cfg.Game.Word, "W", cfg.Game.Word, "play a single round with this word")
	fs.StringVar(&cfg.Game.Word, "word", cfg.Game.Word, "long form of -W")
	fs.BoolVar(&cfg.Game.Hard, "x", cfg.Game.Hard, "hard mode: revealed hints must be reused")
	fs.BoolVar(&cfg.Game.Hard, "hard", cfg.Game.Hard, "long form of -x")
	fs.BoolVar(&cfg.Game.Daily, "daily", cfg.Game.Daily, "play today's word")
	fs.BoolVar(&mono, "m", false, "monochrome display")
	fs.BoolVar(&mono, "monochrome", false, "long form of -m")
	fs.BoolVar(&low, "l", false, "8-colour display")
	fs.BoolVar(&low, "lowcolor", false, "long form of -l")
	fs.BoolVar(&high, "H", false, "16-colour display")
	fs.BoolVar(&high, "highcolor", false, "long form of -H")

	if err := fs.Parse(args); err != nil {
		return "", err
	}

	switch {
	case mono:
		cfg.Term.Color = config.ColorMono
	case low:
		cfg.Term.Color = config.ColorLow
	case high:
		cfg.Term.Color = config.ColorHigh
	}

	cmd := cmdPlay
	switch fs.NArg() {
	case 0:
	case 1:
		cmd = fs.Arg(0)
		if cmd != cmdPlay && cmd != cmdServe {
			return "", fmt.Errorf("unknown command %q", cmd)
		}
	default:
		return "", fmt.Errorf("unexpected arguments %q", fs.Args()[1:])
	}

	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return cmd, nil
}
