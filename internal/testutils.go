package internal

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/minaorangina/shithead/deck"
)

// FailureMessage reports a failed comparison
func FailureMessage(t *testing.T, got, want interface{}) {
	t.Helper()
	t.Errorf("\nGot: %+v\nwant: %+v", got, want)
}

// AssertNoError checks for the non-existence of an error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertEqual checks that the values are equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if got != want {
		FailureMessage(t, got, want)
	}
}

// AssertDeepEqual checks that the values are deeply equal
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		FailureMessage(t, got, want)
	}
}

// AssertTrue checks that the value is true
func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if !got {
		t.Error("Expected to be true, but it wasn't")
	}
}

var (
	rankCodes = map[string]deck.Rank{
		"2": deck.Two, "3": deck.Three, "4": deck.Four, "5": deck.Five,
		"6": deck.Six, "7": deck.Seven, "8": deck.Eight, "9": deck.Nine,
		"10": deck.Ten, "J": deck.Jack, "Q": deck.Queen, "K": deck.King, "A": deck.Ace,
	}
	suitCodes = map[byte]deck.Suit{
		'S': deck.Spade, 'H': deck.Heart, 'C': deck.Club, 'D': deck.Diamond,
	}
)

// ParseCard turns short notation such as "10S", "QH" or "2D" into a card.
// A trailing "#n" selects the n-th copy of a multi-deck, e.g. "5C#1".
func ParseCard(code string) (deck.Card, error) {
	copyIdx := 0
	if i := strings.IndexByte(code, '#'); i >= 0 {
		if _, err := fmt.Sscanf(code[i+1:], "%d", &copyIdx); err != nil {
			return deck.Card{}, fmt.Errorf("bad copy index in %q: %w", code, err)
		}
		code = code[:i]
	}
	if len(code) < 2 {
		return deck.Card{}, fmt.Errorf("bad card code %q", code)
	}

	rank, ok := rankCodes[strings.ToUpper(code[:len(code)-1])]
	if !ok {
		return deck.Card{}, fmt.Errorf("bad rank in %q", code)
	}
	suit, ok := suitCodes[strings.ToUpper(code)[len(code)-1]]
	if !ok {
		return deck.Card{}, fmt.Errorf("bad suit in %q", code)
	}

	base := deck.Of(rank, suit)
	return deck.NewCard(base.ID + copyIdx*52)
}

// Cards parses every code with ParseCard, panicking on bad input
func Cards(codes ...string) []deck.Card {
	cards := make([]deck.Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// Card parses a single code, panicking on bad input
func Card(code string) deck.Card {
	return Cards(code)[0]
}

// StackedDeck builds a deck whose top card is the first code given,
// so cards come off in the order they are written.
func StackedDeck(codes ...string) deck.Deck {
	cards := Cards(codes...)
	d := make(deck.Deck, len(cards))
	for i, c := range cards {
		d[len(cards)-1-i] = c
	}
	return d
}
