package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/minaorangina/shithead/deck"
	"github.com/minaorangina/shithead/engine"
	"github.com/minaorangina/shithead/game"
	"github.com/minaorangina/shithead/protocol"
)

var (
	redCard   = color.New(color.FgRed).SprintFunc()
	magicCard = color.New(color.Bold).SprintFunc()
	burnText  = color.New(color.FgRed, color.Bold).SprintFunc()
	pickText  = color.New(color.FgYellow).SprintFunc()
	doneText  = color.New(color.FgGreen, color.Bold).SprintFunc()
	headText  = color.New(color.Underline).SprintFunc()
)

type renderer struct {
	out io.Writer
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out}
}

func renderCard(c deck.Card) string {
	s := c.String()
	if c.Suit.Red() {
		s = redCard(s)
	}
	if c.Magic() != deck.NoMagic {
		s = magicCard(s)
	}
	return s
}

func renderCards(cards []deck.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, renderCard(c))
	}
	return strings.Join(names, ", ")
}

// table prints what everyone can see once the cards are dealt
func (r *renderer) table(g *game.Game) {
	fmt.Fprintln(r.out, headText("The table"))
	for _, p := range g.Players() {
		fmt.Fprintf(r.out, "%s: face up %s; %d face down; %d in hand\n",
			p.Name, renderCards(p.FaceUp.Cards()), p.DownSize(), p.HandSize())
	}
	fmt.Fprintf(r.out, "%d cards left in the deck\n\n", g.DeckSize())
}

func (r *renderer) event(ev protocol.Event) {
	msg := ev.Message
	switch ev.Command {
	case protocol.Burn:
		msg = burnText(msg)
	case protocol.PickUp:
		msg = pickText(msg)
	case protocol.PlayerFinished:
		msg = doneText(fmt.Sprintf("%s (position %d)", msg, ev.Position))
	case protocol.GameOver:
		msg = headText(msg)
	case protocol.Replenish:
		return
	}
	fmt.Fprintf(r.out, "[%4d] %s\n", ev.Turn, msg)
}

func (r *renderer) summary(sum engine.Summary, seed int64) {
	fmt.Fprintf(r.out, "\n%d turns over %d rounds, %d burns, %d pickups (seed %d)\n",
		sum.Turns, sum.Rounds, sum.Burns, sum.Pickups, seed)
	for i, name := range sum.Finished {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, name)
	}
	if sum.Loser != "" {
		fmt.Fprintf(r.out, "Shithead: %s\n", sum.Loser)
	}
}
