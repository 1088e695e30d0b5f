package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/minaorangina/shithead/config"
	"github.com/minaorangina/shithead/engine"
	"github.com/minaorangina/shithead/game"
	"github.com/minaorangina/shithead/protocol"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game between computer players",
	Long: `Play deals a new game and runs it to the end. Settings come from the
defaults, then --config, then a .env file, then SHITHEAD_* environment
variables, then flags.

Examples:
  shithead play
  shithead play --players Ann,Bob,Cat --seed 42
  shithead play --decks 2 --players a,b,c,d,e,f --json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.String("config", "", "path to a TOML config file")
	f.StringSlice("players", nil, "comma separated player names")
	f.Int("decks", 0, "number of 52-card decks to shuffle together")
	f.Int64("seed", 0, "shuffle seed (0 seeds from the clock)")
	f.Int("max-turns", 0, "give up after this many turns")
	f.String("log-level", "", "log level (debug, info, warn, error)")
	f.Bool("json", false, "print events as JSON lines")
	f.Bool("no-color", false, "disable colour output")
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if f.Changed("players") {
		cfg.Players, _ = f.GetStringSlice("players")
	}
	if f.Changed("decks") {
		cfg.DeckMultiplier, _ = f.GetInt("decks")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("max-turns") {
		cfg.MaxTurns, _ = f.GetInt("max-turns")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if noColor, _ := f.GetBool("no-color"); noColor {
		cfg.Color = false
	}

	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	color.NoColor = color.NoColor || !cfg.Color

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithField("seed", seed).Debug("shuffling")

	g, err := game.New(game.GameOpts{
		PlayerNames:    cfg.Trimmed(),
		DeckMultiplier: cfg.DeckMultiplier,
		Rand:           rand.New(rand.NewSource(seed)),
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("could not deal a new game: %w", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	r := newRenderer(out)
	if !asJSON {
		r.table(g)
	}

	enc := json.NewEncoder(out)
	observer := r.event
	if asJSON {
		observer = func(ev protocol.Event) {
			if err := enc.Encode(ev); err != nil {
				logger.WithError(err).Error("could not encode event")
			}
		}
	}

	e, err := engine.New(g, engine.Opts{
		MaxTurns: cfg.MaxTurns,
		Logger:   logger,
		Observer: observer,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := e.Run(ctx)
	if asJSON {
		if encErr := enc.Encode(sum); encErr != nil {
			logger.WithError(encErr).Error("could not encode summary")
		}
	} else {
		r.summary(sum, seed)
	}
	return err
}
