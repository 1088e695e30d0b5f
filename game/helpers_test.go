package game

import (
	"testing"

	"github.com/minaorangina/shithead/deck"
	utils "github.com/minaorangina/shithead/internal"
	"github.com/stretchr/testify/require"
)

type zones struct {
	hand, up, down []string
}

func playerWith(name string, z zones) *Player {
	p := NewPlayer(name)
	p.Hand = NewHand(utils.Cards(z.hand...)...)
	p.FaceUp = NewHand(utils.Cards(z.up...)...)
	p.FaceDown = NewHand(utils.Cards(z.down...)...)
	return p
}

func pileOf(codes ...string) *Pile {
	return NewPile(utils.Cards(codes...)...)
}

func existingGame(t *testing.T, opts ExistingOpts) *Game {
	t.Helper()
	g, err := ExistingGame(opts)
	require.NoError(t, err)
	return g
}

func assertConserved(t *testing.T, g *Game) {
	t.Helper()
	require.Equal(t, g.TotalCards(), g.CardsInPlay()+g.BurntCount(),
		"deck %d, pile %d, burnt %d", g.DeckSize(), g.Pile().Size(), g.BurntCount())
}

func ranksOf(cards []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, 0, len(cards))
	for _, c := range cards {
		ranks = append(ranks, c.Rank)
	}
	return ranks
}
