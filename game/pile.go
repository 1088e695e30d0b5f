package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/shithead/deck"
)

var ErrIllegalMove = errors.New("illegal move")

// Pile is the shared discard pile. The last card appended is the top.
type Pile struct {
	cards Hand
}

// NewPile constructs an empty pile
func NewPile(cards ...deck.Card) *Pile {
	return &Pile{cards: NewHand(cards...)}
}

func (p *Pile) Size() int {
	if p == nil {
		return 0
	}
	return p.cards.Len()
}

// Top returns the most recently played card
func (p *Pile) Top() (deck.Card, bool) {
	n := p.Size()
	if n == 0 {
		return deck.Card{}, false
	}
	c, _ := p.cards.At(n - 1)
	return c, true
}

// Cards returns the pile in play order, oldest first
func (p *Pile) Cards() []deck.Card {
	return p.cards.Cards()
}

// CanPlay reports whether card may be played on the pile
func (p *Pile) CanPlay(card deck.Card) bool {
	return CanPlay(card, p)
}

// Append plays card on top of the pile and returns the new size
func (p *Pile) Append(card deck.Card) (int, error) {
	if !p.CanPlay(card) {
		top, _ := p.Top()
		return p.Size(), fmt.Errorf("%w: %s on %s", ErrIllegalMove, card, top)
	}
	p.cards.AddAll(card)
	return p.Size(), nil
}

// PickUp empties the pile, returning its cards in play order
func (p *Pile) PickUp() []deck.Card {
	return p.cards.Clear()
}

func (p *Pile) String() string {
	return p.cards.String()
}
