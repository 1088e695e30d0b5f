package game

import "github.com/minaorangina/shithead/deck"

func cardsUnique(cards []deck.Card) bool {
	seen := map[int]struct{}{}
	for _, c := range cards {
		if _, ok := seen[c.ID]; ok {
			return false
		}
		seen[c.ID] = struct{}{}
	}
	return true
}

func countCards(d deck.Deck, pile *Pile, players []*Player) int {
	n := d.Size() + pile.Size()
	for _, p := range players {
		n += p.CardCount()
	}
	return n
}
