package deck

import (
	"errors"
	"fmt"
)

const (
	numRanks    = 13
	numSuits    = 4
	cardsPerSet = numRanks * numSuits
)

var ErrInvalidCardID = errors.New("card id out of range")

// Card represents a playing card.
// Its rank and suit are derived from its id, which is unique within a deck.
type Card struct {
	ID   int
	Rank Rank
	Suit Suit
}

// NewCard constructs the card with the given id.
// Ids above 51 belong to the second and later copies of a multi-deck.
func NewCard(id int) (Card, error) {
	if id < 0 {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidCardID, id)
	}
	base := id % cardsPerSet
	return Card{
		ID:   id,
		Rank: Rank(base % numRanks),
		Suit: Suit(base / numRanks),
	}, nil
}

// Copy returns which 52-card set the card belongs to.
func (c Card) Copy() int {
	return c.ID / cardsPerSet
}

// Magic returns the special effect of the card's rank.
func (c Card) Magic() MagicKind {
	return c.Rank.Magic()
}

func (c Card) String() string {
	s := fmt.Sprintf("%s of %ss", c.Rank, c.Suit)
	if m := c.Magic(); m != NoMagic {
		s += fmt.Sprintf(" (%s)", m)
	}
	return s
}

// CompareCards orders cards by id. It says nothing about which card may be
// played on which; use ranks for that.
func CompareCards(a, b Card) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// Of returns the first-copy card with the given rank and suit.
func Of(r Rank, s Suit) Card {
	return Card{ID: int(s)*numRanks + int(r), Rank: r, Suit: s}
}
