package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrEmptyDeck         = errors.New("deck is empty")
	ErrInvalidMultiplier = errors.New("deck multiplier must be at least 1")
)

// Deck represents a deck of cards. The last element is the top of the deck.
type Deck []Card

// New creates a deck made of multiplier full sets of 52 cards, in id order
func New(multiplier int) (Deck, error) {
	if multiplier < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMultiplier, multiplier)
	}

	cards := make(Deck, 0, multiplier*cardsPerSet)
	for id := 0; id < multiplier*cardsPerSet; id++ {
		c, err := NewCard(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Shuffle shuffles the deck of cards in place.
// A nil source falls back to one seeded from the clock.
func (d *Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	}
}

// Size returns the number of cards left in the deck
func (d Deck) Size() int {
	return len(d)
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	n := len(*d)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := (*d)[n-1]
	*d = (*d)[:n-1]
	return c, nil
}

// Deal deals n number of cards from the top of the deck.
// It deals nothing if n is out of range.
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:])
	*d = (*d)[:startingIndex]
	return subSlice
}
