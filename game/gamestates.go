package game

// TurnState represents a step of a single player's turn
type TurnState int

const (
	ChoosingCard TurnState = iota
	Played
	PickedUpPile
	Replenished
	BurnCheck
	TurnDone
)

var turnStateNames = []string{
	"ChoosingCard",
	"Played",
	"PickedUpPile",
	"Replenished",
	"BurnCheck",
	"TurnDone",
}

func (s TurnState) String() string {
	if s < ChoosingCard || s > TurnDone {
		return ""
	}
	return turnStateNames[s]
}

// ReplenishSource records where a player's hand was topped up from
type ReplenishSource int

const (
	FromNowhere ReplenishSource = iota
	FromDeck
	FromFaceUp
	FromFaceDown
)

var replenishSourceNames = []string{"nowhere", "deck", "face-up", "face-down"}

func (r ReplenishSource) String() string {
	if r < FromNowhere || r > FromFaceDown {
		return ""
	}
	return replenishSourceNames[r]
}
