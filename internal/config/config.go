// apps/go-term/internal/config/config.go
//
// Configuration schema. Each field can come from YAML (yaml tag) or the
// environment (env tag); env-default supplies the fallback.

package config

import "time"

// Config is the root application configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Term   TermConfig   `yaml:"term"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig selects the dictionary and how targets are chosen.
type GameConfig struct {
	WordList  string `yaml:"word_list"  env:"CORDL_WORDS"`
	Word      string `yaml:"word"       env:"CORDL_WORD"`
	Hard      bool   `yaml:"hard"       env:"CORDL_HARD"  env-default:"false"`
	Daily     bool   `yaml:"daily"      env:"CORDL_DAILY" env-default:"false"`
	DailySalt string `yaml:"daily_salt" env:"DAILY_SALT"  env-default:"cordl"`
}

// SingleRound reports whether the target is pinned, so the program exits
// after one round instead of drawing another.
func (g GameConfig) SingleRound() bool { return g.Word != "" || g.Daily }

// Colour modes understood by the terminal host.
const (
	ColorAuto = "auto"
	ColorMono = "mono"
	ColorLow  = "low"
	ColorHigh = "high"
)

// TermConfig holds terminal presentation settings.
type TermConfig struct {
	Color string `yaml:"color" env:"CORDL_COLOR" env-default:"auto"`
}

// ServerConfig holds HTTP host settings.
type ServerConfig struct {
	Port        int           `yaml:"port"         env:"PORT"              env-default:"5175"`
	TokenSecret string        `yaml:"token_secret" env:"GAME_TOKEN_SECRET"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"GAME_TOKEN_TTL"    env-default:"24h"`
	Timeout     time.Duration `yaml:"timeout"      env:"SERVER_TIMEOUT"    env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"LOG_FILE"`
}
