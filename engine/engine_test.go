package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/minaorangina/shithead/game"
	utils "github.com/minaorangina/shithead/internal"
	"github.com/minaorangina/shithead/protocol"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerWith(name string, hand ...string) *game.Player {
	p := game.NewPlayer(name)
	p.Hand = game.NewHand(utils.Cards(hand...)...)
	return p
}

func TestNew(t *testing.T) {
	_, err := New(nil, Opts{})
	assert.ErrorIs(t, err, ErrNilGame)
}

func TestRun(t *testing.T) {
	t.Run("plays until one player is left", func(t *testing.T) {
		t.Log("Given Harry is one card from going out")
		g, err := game.ExistingGame(game.ExistingOpts{
			Players: []*game.Player{
				playerWith("Harry", "KS"),
				playerWith("Sally", "3H", "4H"),
			},
		})
		require.NoError(t, err)

		events := []protocol.Event{}
		e, err := New(g, Opts{Observer: func(ev protocol.Event) { events = append(events, ev) }})
		require.NoError(t, err)

		t.Log("When the engine runs")
		sum, err := e.Run(context.Background())
		utils.AssertNoError(t, err)

		t.Log("Then Harry finishes and Sally is the shithead")
		utils.AssertEqual(t, sum.Turns, 1)
		utils.AssertEqual(t, sum.Rounds, 1)
		utils.AssertDeepEqual(t, sum.Finished, []string{"Harry"})
		utils.AssertEqual(t, sum.Loser, "Sally")

		cmds := []protocol.Cmd{}
		for _, ev := range events {
			cmds = append(cmds, ev.Command)
		}
		utils.AssertDeepEqual(t, cmds, []protocol.Cmd{protocol.Play, protocol.PlayerFinished, protocol.GameOver})
		utils.AssertEqual(t, events[0].Card, "King of Spades")
		utils.AssertEqual(t, events[1].Position, 1)
		utils.AssertEqual(t, events[2].Message, "Sally is the shithead")
	})

	t.Run("counts rounds, burns and pickups", func(t *testing.T) {
		g, err := game.ExistingGame(game.ExistingOpts{
			Pile: utils.Cards("AD"),
			Players: []*game.Player{
				playerWith("Harry", "4S", "5S"),
				playerWith("Sally", "10H", "6H"),
				playerWith("Marie", "9C", "JC"),
			},
		})
		require.NoError(t, err)

		e, err := New(g, Opts{MaxTurns: 4})
		require.NoError(t, err)

		sum, err := e.Run(context.Background())
		assert.ErrorIs(t, err, ErrTurnLimit)
		utils.AssertEqual(t, sum.Turns, 4)
		utils.AssertEqual(t, sum.Rounds, 2)
		utils.AssertEqual(t, sum.Burns, 1)
		utils.AssertEqual(t, sum.Pickups, 1)
		assert.Empty(t, sum.Finished)
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		g, err := game.NewGame([]string{"Harry", "Sally"}, 1)
		require.NoError(t, err)
		e, err := New(g, Opts{})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sum, err := e.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		utils.AssertEqual(t, sum.Turns, 0)
	})

	t.Run("returns game errors", func(t *testing.T) {
		boom := errors.New("boom")
		e, err := New(&SpyGame{stepErr: boom}, Opts{})
		require.NoError(t, err)

		_, err = e.Run(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("a seeded game keeps every card accounted for", func(t *testing.T) {
		g, err := game.New(game.GameOpts{
			PlayerNames:    []string{"Harry", "Sally"},
			DeckMultiplier: 1,
			Rand:           rand.New(rand.NewSource(2024)),
		})
		require.NoError(t, err)

		e, err := New(g, Opts{
			MaxTurns: 2000,
			Observer: func(protocol.Event) {
				require.Equal(t, 52, g.CardsInPlay()+g.BurntCount())
			},
		})
		require.NoError(t, err)

		sum, err := e.Run(context.Background())
		if err != nil {
			assert.ErrorIs(t, err, ErrTurnLimit)
		} else {
			utils.AssertEqual(t, len(sum.Finished), 1)
			assert.NotEmpty(t, sum.Loser)
		}
	})

	t.Run("logs finished players", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		g, err := game.ExistingGame(game.ExistingOpts{
			Players: []*game.Player{
				playerWith("Harry", "KS"),
				playerWith("Sally", "3H"),
			},
		})
		require.NoError(t, err)
		e, err := New(g, Opts{Logger: logger})
		require.NoError(t, err)

		_, err = e.Run(context.Background())
		require.NoError(t, err)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		utils.AssertEqual(t, entry.Message, "game over")
		utils.AssertEqual(t, entry.Data["loser"], "Sally")

		var finished bool
		for _, en := range hook.AllEntries() {
			if en.Message == "player finished" && en.Data["player"] == "Harry" {
				finished = true
			}
		}
		utils.AssertTrue(t, finished)
	})
}

func TestTurnEvents(t *testing.T) {
	p := playerWith("Harry")
	played := utils.Card("10S")
	res := game.TurnResult{
		Played:        &played,
		PickedUp:      true,
		PickedUpCount: 5,
		Burnt:         true,
		BurntCount:    1,
		Source:        game.FromDeck,
	}

	events := TurnEvents(7, 2, p, res, 0, 30)

	require.Len(t, events, 4)
	utils.AssertEqual(t, events[0].Command, protocol.PickUp)
	utils.AssertEqual(t, events[0].Count, 5)
	utils.AssertEqual(t, events[1].Command, protocol.Play)
	utils.AssertEqual(t, events[1].Card, "10 of Spades (burn)")
	utils.AssertEqual(t, events[2].Command, protocol.Burn)
	utils.AssertEqual(t, events[3].Command, protocol.Replenish)
	utils.AssertEqual(t, events[3].Source, "deck")
	for _, ev := range events {
		utils.AssertEqual(t, ev.Turn, 7)
		utils.AssertEqual(t, ev.Round, 2)
		utils.AssertEqual(t, ev.Player.Name, "Harry")
		utils.AssertEqual(t, ev.Deck, 30)
	}
}
