package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const cardsPerPlayer = 9

var (
	ErrTooFewPlayers     = errors.New("minimum of 2 players required")
	ErrDuplicatePlayer   = errors.New("player names must be unique")
	ErrEmptyPlayerName   = errors.New("player name must not be empty")
	ErrInvalidMultiplier = errors.New("deck multiplier must be at least 1")
	ErrNotEnoughCards    = errors.New("not enough cards to deal to every player")
	ErrInvalidMaxTurns   = errors.New("max turns must be positive")
)

// Config holds the settings for a simulated game
type Config struct {
	Players        []string `toml:"players" env:"SHITHEAD_PLAYERS"`
	DeckMultiplier int      `toml:"deck_multiplier" env:"SHITHEAD_DECKS"`
	// Seed drives the shuffle. Zero means seed from the clock.
	Seed      int64  `toml:"seed" env:"SHITHEAD_SEED"`
	MaxTurns  int    `toml:"max_turns" env:"SHITHEAD_MAX_TURNS"`
	LogLevel  string `toml:"log_level" env:"SHITHEAD_LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"SHITHEAD_LOG_FORMAT"`
	Color     bool   `toml:"color" env:"SHITHEAD_COLOR"`
}

// Default returns the configuration used when nothing else is set
func Default() Config {
	return Config{
		Players:        []string{"Harry", "Sally"},
		DeckMultiplier: 1,
		MaxTurns:       5000,
		LogLevel:       "warn",
		LogFormat:      "text",
		Color:          true,
	}
}

// Load builds a Config from the defaults, then the TOML file at path (if
// path is not empty), then a .env file in the working directory, then
// SHITHEAD_* environment variables. Later sources win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env: %w", err)
	}

	if err := FromEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// FromEnv overrides cfg with any SHITHEAD_* environment variables that are
// set. Lists such as SHITHEAD_PLAYERS are separated by semicolons.
func FromEnv(cfg *Config) error {
	err := envdecode.Decode(cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("error decoding environment: %w", err)
	}
	return nil
}

// Validate checks the configuration describes a game that can be dealt
func (c Config) Validate() error {
	if len(c.Players) < 2 {
		return ErrTooFewPlayers
	}

	seen := map[string]struct{}{}
	for _, name := range c.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrEmptyPlayerName
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, name)
		}
		seen[name] = struct{}{}
	}

	if c.DeckMultiplier < 1 {
		return ErrInvalidMultiplier
	}
	if need, have := len(c.Players)*cardsPerPlayer, c.DeckMultiplier*52; need > have {
		return fmt.Errorf("%w: %d players need %d cards, %d deck(s) hold %d",
			ErrNotEnoughCards, len(c.Players), need, c.DeckMultiplier, have)
	}
	if c.MaxTurns <= 0 {
		return ErrInvalidMaxTurns
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}

// Logger builds a logrus logger writing to stderr at the configured level
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l, nil
}

// Trimmed returns the player names with surrounding space removed
func (c Config) Trimmed() []string {
	names := make([]string, 0, len(c.Players))
	for _, n := range c.Players {
		names = append(names, strings.TrimSpace(n))
	}
	return names
}
