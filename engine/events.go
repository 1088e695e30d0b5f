package engine

import (
	"fmt"

	"github.com/minaorangina/shithead/game"
	"github.com/minaorangina/shithead/protocol"
)

// TurnEvents breaks a turn result into the events a driver shows, in the
// order they happened
func TurnEvents(turn, round int, p *game.Player, res game.TurnResult, pileSize, deckSize int) []protocol.Event {
	base := protocol.Event{
		Turn:   turn,
		Round:  round,
		Player: protocol.Player{PlayerID: p.ID, Name: p.Name},
		Pile:   pileSize,
		Deck:   deckSize,
	}
	events := []protocol.Event{}

	if res.PickedUp {
		ev := base
		ev.Command = protocol.PickUp
		ev.Count = res.PickedUpCount
		ev.Message = fmt.Sprintf("%s picks up %d cards", p.Name, res.PickedUpCount)
		events = append(events, ev)
	}

	if res.Played != nil {
		ev := base
		ev.Command = protocol.Play
		ev.Card = res.Played.String()
		ev.Message = fmt.Sprintf("%s plays %s", p.Name, res.Played)
		events = append(events, ev)
	}

	if res.Burnt {
		ev := base
		ev.Command = protocol.Burn
		ev.Count = res.BurntCount
		ev.Message = fmt.Sprintf("pile burnt (%d cards)", res.BurntCount)
		events = append(events, ev)
	}

	if res.Source != game.FromNowhere {
		ev := base
		ev.Command = protocol.Replenish
		ev.Source = res.Source.String()
		ev.Message = fmt.Sprintf("%s takes a card from the %s", p.Name, res.Source)
		events = append(events, ev)
	}

	if res.Won {
		ev := base
		ev.Command = protocol.PlayerFinished
		ev.Message = fmt.Sprintf("%s has no cards left", p.Name)
		events = append(events, ev)
	}

	return events
}
