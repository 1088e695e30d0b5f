package game

import "github.com/minaorangina/shithead/deck"

const (
	minPlayers      = 2
	numCardsInGroup = 3
	burnNum         = 4
)

// CanPlay reports whether card is legal on top of pile.
// Legality is decided by rank alone.
func CanPlay(card deck.Card, pile *Pile) bool {
	top, ok := pile.Top()

	// Can play any card on an empty pile
	if !ok {
		return true
	}

	switch card.Magic() {
	case deck.Reset, deck.Burn:
		return true
	}

	// A mirror reflects itself: the effective top is the eight, never
	// whatever lies beneath it.
	effectiveTop := top

	if effectiveTop.Magic() == deck.Reverse {
		return deck.CompareRanks(card.Rank, effectiveTop.Rank) <= 0
	}

	return deck.CompareRanks(card.Rank, effectiveTop.Rank) >= 0
}

// PlayableIndices returns the positions of cards that may be played on pile
func PlayableIndices(cards []deck.Card, pile *Pile) []int {
	moves := []int{}
	for i, c := range cards {
		if CanPlay(c, pile) {
			moves = append(moves, i)
		}
	}
	return moves
}

// ShouldBurn reports whether the pile must be burnt after the last play
func ShouldBurn(pile *Pile) bool {
	top, ok := pile.Top()
	if !ok {
		return false
	}

	if top.Magic() == deck.Burn {
		return true
	}

	if pile.Size() < burnNum {
		return false
	}

	cards := pile.Cards()
	for _, c := range cards[len(cards)-burnNum:] {
		if c.Rank != top.Rank {
			return false
		}
	}

	return true
}
