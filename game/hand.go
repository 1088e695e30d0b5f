package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minaorangina/shithead/deck"
)

var ErrCardIndex = errors.New("card index out of range")

// Hand is an ordered group of cards. The zero value is an empty hand.
type Hand struct {
	cards []deck.Card
}

// NewHand constructs a hand holding the given cards in order
func NewHand(cards ...deck.Card) Hand {
	h := Hand{}
	h.AddAll(cards...)
	return h
}

// Add appends a card to the end of the hand.
// A nil card, such as one taken from an empty source, is ignored.
func (h *Hand) Add(c *deck.Card) {
	if c == nil {
		return
	}
	h.cards = append(h.cards, *c)
}

// AddAll appends cards to the end of the hand
func (h *Hand) AddAll(cards ...deck.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// At returns the card at index i
func (h *Hand) At(i int) (deck.Card, error) {
	if i < 0 || i >= len(h.cards) {
		return deck.Card{}, fmt.Errorf("%w: %d of %d", ErrCardIndex, i, len(h.cards))
	}
	return h.cards[i], nil
}

// Cards returns a copy of the cards in order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// RemoveAt removes the card at index i, keeping the order of the rest
func (h *Hand) RemoveAt(i int) (deck.Card, error) {
	c, err := h.At(i)
	if err != nil {
		return deck.Card{}, err
	}
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return c, nil
}

// TakeLast removes the last card, returning nil if the hand is empty
func (h *Hand) TakeLast() *deck.Card {
	n := len(h.cards)
	if n == 0 {
		return nil
	}
	c := h.cards[n-1]
	h.cards = h.cards[:n-1]
	return &c
}

// Clear empties the hand and returns what it held
func (h *Hand) Clear() []deck.Card {
	cards := h.cards
	h.cards = nil
	if cards == nil {
		cards = []deck.Card{}
	}
	return cards
}

func (h *Hand) String() string {
	names := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
