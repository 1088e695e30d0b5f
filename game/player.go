package game

import (
	"github.com/minaorangina/shithead/deck"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player holds a player's three zones of cards.
// Hand is played from; FaceUp and FaceDown are promoted into the hand,
// one card at a time, once the deck can no longer top it up.
type Player struct {
	ID       string
	Name     string
	Hand     Hand
	FaceUp   Hand
	FaceDown Hand
	Strategy Strategy
}

// NewPlayer constructs a player with no cards and the greedy strategy
func NewPlayer(name string) *Player {
	return &Player{
		ID:       NewID(),
		Name:     name,
		Strategy: Greedy{},
	}
}

func (p *Player) HandSize() int { return p.Hand.Len() }
func (p *Player) UpSize() int   { return p.FaceUp.Len() }
func (p *Player) DownSize() int { return p.FaceDown.Len() }

// CardCount is the number of cards across all three zones
func (p *Player) CardCount() int {
	return p.HandSize() + p.UpSize() + p.DownSize()
}

// Emptied reports whether the player has no cards left in any zone
func (p *Player) Emptied() bool {
	return p.CardCount() == 0
}

// Replenish tops up the hand after a play. At most one card is taken, from
// the first source that yields one: the deck (only while the hand is below
// three cards), then, if the hand is empty, a face-up card, then a face-down
// card taken blind. won is true when every zone is empty.
func (p *Player) Replenish(d *deck.Deck) (from ReplenishSource, won bool) {
	if p.HandSize() < numCardsInGroup && d != nil {
		if c, err := d.Draw(); err == nil {
			p.Hand.Add(&c)
			return FromDeck, false
		}
		// empty deck: fall through to the table cards
	}

	if p.HandSize() > 0 {
		return FromNowhere, false
	}

	p.Hand.Add(p.FaceUp.TakeLast())
	if p.HandSize() > 0 {
		return FromFaceUp, false
	}

	p.Hand.Add(p.FaceDown.TakeLast())
	if p.HandSize() > 0 {
		return FromFaceDown, false
	}

	return FromNowhere, true
}

func (p *Player) allCards() []deck.Card {
	cards := p.Hand.Cards()
	cards = append(cards, p.FaceUp.Cards()...)
	return append(cards, p.FaceDown.Cards()...)
}
