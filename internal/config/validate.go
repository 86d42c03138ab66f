// apps/go-term/internal/config/validate.go
//
// Rule checks that struct tags cannot express. Validate also normalises
// the fixed word to lowercase.

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Validate performs rule validation on the loaded configuration.
// Command-line overrides are applied after Load, so callers run it again
// once flags are merged.
func (c *Config) Validate() error {
	if err := c.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	switch c.Term.Color {
	case ColorAuto, ColorMono, ColorLow, ColorHigh:
	default:
		return fmt.Errorf("term.color must be one of auto, mono, low, high (got %q)", c.Term.Color)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	if c.Server.TokenTTL <= 0 {
		return fmt.Errorf("server.token_ttl must be > 0 (got %s)", c.Server.TokenTTL)
	}
	if c.Server.TokenSecret != "" && len(c.Server.TokenSecret) < 16 {
		return fmt.Errorf("server.token_secret must be at least 16 characters (got %d)", len(c.Server.TokenSecret))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func (g *GameConfig) validate() error {
	if g.Word != "" && g.Daily {
		return fmt.Errorf("word and daily are mutually exclusive")
	}
	if g.Word != "" {
		w, err := game.ParseWord(g.Word)
		if err != nil {
			return fmt.Errorf("word: %w", err)
		}
		g.Word = w.String()
	}
	if g.Daily && g.DailySalt == "" {
		return fmt.Errorf("daily_salt must be set for daily play")
	}
	return nil
}
