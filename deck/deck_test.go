package deck_test

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/shithead/deck"
	utils "github.com/minaorangina/shithead/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rankSuit struct {
	rank deck.Rank
	suit deck.Suit
}

func TestNew(t *testing.T) {
	t.Run("single deck has 52 unique cards", func(t *testing.T) {
		d, err := deck.New(1)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, d.Size(), 52)

		pairs := map[rankSuit]int{}
		for _, c := range d {
			pairs[rankSuit{c.Rank, c.Suit}]++
		}
		utils.AssertEqual(t, len(pairs), 52)
	})

	t.Run("double deck has two of each card", func(t *testing.T) {
		d, err := deck.New(2)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, d.Size(), 104)

		pairs := map[rankSuit]int{}
		ids := map[int]struct{}{}
		for _, c := range d {
			pairs[rankSuit{c.Rank, c.Suit}]++
			ids[c.ID] = struct{}{}
		}
		utils.AssertEqual(t, len(pairs), 52)
		for pair, n := range pairs {
			assert.Equal(t, 2, n, "%v", pair)
		}
		utils.AssertEqual(t, len(ids), 104)
	})

	t.Run("rejects multipliers below one", func(t *testing.T) {
		_, err := deck.New(0)
		assert.ErrorIs(t, err, deck.ErrInvalidMultiplier)
	})
}

func TestShuffle(t *testing.T) {
	t.Run("keeps every card", func(t *testing.T) {
		d, err := deck.New(1)
		require.NoError(t, err)
		d.Shuffle(rand.New(rand.NewSource(42)))

		ids := map[int]struct{}{}
		for _, c := range d {
			ids[c.ID] = struct{}{}
		}
		utils.AssertEqual(t, len(ids), 52)
	})

	t.Run("same seed gives the same order", func(t *testing.T) {
		a, _ := deck.New(1)
		b, _ := deck.New(1)
		a.Shuffle(rand.New(rand.NewSource(7)))
		b.Shuffle(rand.New(rand.NewSource(7)))
		utils.AssertDeepEqual(t, a, b)
	})

	t.Run("nil source still shuffles", func(t *testing.T) {
		d, _ := deck.New(1)
		d.Shuffle(nil)
		utils.AssertEqual(t, d.Size(), 52)
	})
}

func TestDraw(t *testing.T) {
	d := deck.Deck{deck.Of(deck.Four, deck.Club), deck.Of(deck.King, deck.Heart)}

	c, err := d.Draw()
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, c, deck.Of(deck.King, deck.Heart))
	utils.AssertEqual(t, d.Size(), 1)

	c, err = d.Draw()
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, c, deck.Of(deck.Four, deck.Club))

	_, err = d.Draw()
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
}

func TestDeal(t *testing.T) {
	d, _ := deck.New(1)

	dealt := d.Deal(3)
	utils.AssertEqual(t, len(dealt), 3)
	utils.AssertEqual(t, d.Size(), 49)
	utils.AssertEqual(t, dealt[2].ID, 51)

	t.Log("out of range deals nothing")
	assert.Empty(t, d.Deal(50))
	assert.Empty(t, d.Deal(-1))
	utils.AssertEqual(t, d.Size(), 49)
}
