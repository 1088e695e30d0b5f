package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minaorangina/shithead/game"
	"github.com/minaorangina/shithead/protocol"
	"github.com/sirupsen/logrus"
)

var (
	ErrNilGame   = errors.New("engine has no game")
	ErrTurnLimit = errors.New("turn limit reached before the game ended")
)

// Game is what the engine steps through
type Game interface {
	Step() (game.TurnResult, error)
	Over() bool
	CurrentPlayer() int
	Players() []*game.Player
	FinishedPlayers() []int
	Loser() (int, bool)
	DeckSize() int
	Pile() *game.Pile
}

// Opts configures an Engine
type Opts struct {
	// MaxTurns stops a game that has not ended. Zero means no limit.
	MaxTurns int
	Logger   logrus.FieldLogger
	// Observer, if set, receives every event as it happens.
	Observer func(protocol.Event)
}

// Engine drives a game turn by turn, in player order, until it is over
type Engine struct {
	game     Game
	maxTurns int
	log      logrus.FieldLogger
	observer func(protocol.Event)
}

// Summary describes a finished run
type Summary struct {
	Turns    int      `json:"turns"`
	Rounds   int      `json:"rounds"`
	Burns    int      `json:"burns"`
	Pickups  int      `json:"pickups"`
	Finished []string `json:"finished"`
	Loser    string   `json:"loser,omitempty"`
}

// New constructs an Engine for g
func New(g Game, opts Opts) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{
		game:     g,
		maxTurns: opts.MaxTurns,
		log:      log,
		observer: opts.Observer,
	}, nil
}

// Run plays turns until the game is over, ctx is done, or the turn limit
// is hit. ctx is only checked between turns.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	sum := Summary{Rounds: 1}

	for !e.game.Over() {
		if err := ctx.Err(); err != nil {
			return e.summarise(sum), err
		}
		if e.maxTurns > 0 && sum.Turns >= e.maxTurns {
			e.log.WithField("turns", sum.Turns).Warn("turn limit reached")
			return e.summarise(sum), fmt.Errorf("%w (%d)", ErrTurnLimit, e.maxTurns)
		}

		idx := e.game.CurrentPlayer()
		res, err := e.game.Step()
		if err != nil {
			return e.summarise(sum), fmt.Errorf("turn %d: %w", sum.Turns+1, err)
		}
		sum.Turns++
		if res.Burnt {
			sum.Burns++
		}
		if res.PickedUp {
			sum.Pickups++
		}

		player := e.game.Players()[idx]
		events := TurnEvents(sum.Turns, sum.Rounds, player, res, e.game.Pile().Size(), e.game.DeckSize())
		for _, ev := range events {
			if ev.Command == protocol.PlayerFinished {
				ev.Position = len(e.game.FinishedPlayers())
			}
			e.emit(ev)
		}
		if res.Won {
			e.log.WithFields(logrus.Fields{
				"player": player.Name,
				"turn":   sum.Turns,
			}).Info("player finished")
		}

		if !e.game.Over() && e.game.CurrentPlayer() <= idx {
			sum.Rounds++
		}
	}

	sum = e.summarise(sum)
	e.emit(protocol.Event{
		Command: protocol.GameOver,
		Turn:    sum.Turns,
		Round:   sum.Rounds,
		Pile:    e.game.Pile().Size(),
		Deck:    e.game.DeckSize(),
		Message: fmt.Sprintf("%s is the shithead", sum.Loser),
	})
	e.log.WithFields(logrus.Fields{
		"turns": sum.Turns,
		"loser": sum.Loser,
	}).Info("game over")

	return sum, nil
}

func (e *Engine) summarise(sum Summary) Summary {
	players := e.game.Players()
	sum.Finished = []string{}
	for _, idx := range e.game.FinishedPlayers() {
		sum.Finished = append(sum.Finished, players[idx].Name)
	}
	if idx, ok := e.game.Loser(); ok {
		sum.Loser = players[idx].Name
	}
	return sum
}

func (e *Engine) emit(ev protocol.Event) {
	e.log.WithFields(logrus.Fields{
		"turn":    ev.Turn,
		"player":  ev.Player.Name,
		"command": ev.Command.String(),
		"card":    ev.Card,
	}).Debug("event")

	if e.observer != nil {
		e.observer(ev)
	}
}
