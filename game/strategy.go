package game

import "github.com/minaorangina/shithead/deck"

// Strategy picks which card of a hand to play on the pile.
// It returns false when it finds nothing to play.
type Strategy interface {
	Choose(hand []deck.Card, pile *Pile) (int, bool)
}

// StrategyFunc adapts a function to a Strategy
type StrategyFunc func(hand []deck.Card, pile *Pile) (int, bool)

func (f StrategyFunc) Choose(hand []deck.Card, pile *Pile) (int, bool) {
	return f(hand, pile)
}

// Greedy plays the first legal card, scanning left to right
type Greedy struct{}

func (Greedy) Choose(hand []deck.Card, pile *Pile) (int, bool) {
	for i, c := range hand {
		if CanPlay(c, pile) {
			return i, true
		}
	}
	return 0, false
}
