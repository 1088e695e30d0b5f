package game

import (
	"fmt"

	"github.com/minaorangina/shithead/deck"
	"github.com/sirupsen/logrus"
)

// TurnResult describes what happened during one player's turn
type TurnResult struct {
	Player        int
	Played        *deck.Card
	PickedUp      bool
	PickedUpCount int
	Burnt         bool
	BurntCount    int
	Won           bool
	Source        ReplenishSource
	States        []TurnState
}

func (r *TurnResult) enter(s TurnState) {
	r.States = append(r.States, s)
}

// PlayTurn runs the turn of the player at idx: play the chosen legal card,
// or pick up the pile and play onto the empty pile, then replenish the hand
// and burn the pile if the play calls for it.
func (g *Game) PlayTurn(idx int) (TurnResult, error) {
	if g == nil {
		return TurnResult{}, ErrNilGame
	}
	if idx < 0 || idx >= len(g.players) {
		return TurnResult{}, fmt.Errorf("%w %d", ErrPlayerIndex, idx)
	}
	if g.Over() {
		return TurnResult{}, ErrGameOver
	}
	if g.done[idx] {
		return TurnResult{}, fmt.Errorf("%w: %s", ErrPlayerFinished, g.players[idx].Name)
	}

	p := g.players[idx]
	res := TurnResult{Player: idx}
	log := g.log.WithFields(logrus.Fields{"player": p.Name, "pile": g.pile.Size()})

	// A hand can only be empty here if the game was restored that way
	if p.HandSize() == 0 {
		var won bool
		res.Source, won = p.Replenish(&g.deck)
		if won {
			res.Won = true
			g.finish(idx)
			res.enter(TurnDone)
			log.Debug("player started turn with no cards")
			return res, nil
		}
	}

	res.enter(ChoosingCard)
	cardIdx, ok := g.choose(p, log)
	if !ok {
		picked := g.pile.PickUp()
		p.Hand.AddAll(picked...)
		res.PickedUp = true
		res.PickedUpCount = len(picked)
		res.enter(PickedUpPile)
		log.WithField("cards", len(picked)).Debug("no legal move, picked up pile")

		res.enter(ChoosingCard)
		cardIdx, ok = g.choose(p, log)
		if !ok {
			return res, fmt.Errorf("%w: nothing playable on an empty pile", ErrInvalidGameState)
		}
	}

	card, err := p.Hand.RemoveAt(cardIdx)
	if err != nil {
		return res, err
	}
	if _, err := g.pile.Append(card); err != nil {
		// choose only returns legal cards
		p.Hand.AddAll(card)
		return res, err
	}
	res.Played = &card
	res.enter(Played)
	log = log.WithField("card", card.String())

	res.Source, res.Won = p.Replenish(&g.deck)
	res.enter(Replenished)

	res.enter(BurnCheck)
	if ShouldBurn(g.pile) {
		res.Burnt = true
		res.BurntCount = g.pile.Size()
		g.burnt += res.BurntCount
		g.pile = NewPile()
		log.WithField("burnt", res.BurntCount).Debug("pile burnt")
	}

	if res.Won {
		g.finish(idx)
		log.Info("player has no cards left")
	}

	res.enter(TurnDone)
	log.WithField("from", res.Source.String()).Debug("turn done")

	return res, nil
}

// choose asks the player's strategy for a card, falling back to the greedy
// choice when the strategy offers nothing legal
func (g *Game) choose(p *Player, log logrus.FieldLogger) (int, bool) {
	hand := p.Hand.Cards()

	if p.Strategy != nil {
		if i, ok := p.Strategy.Choose(hand, g.pile); ok {
			if i >= 0 && i < len(hand) && CanPlay(hand[i], g.pile) {
				return i, true
			}
			log.WithField("index", i).Warn("strategy chose an unplayable card")
		}
	}

	return Greedy{}.Choose(hand, g.pile)
}
