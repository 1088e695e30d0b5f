package deck

import "fmt"

// Rank represents a rank in a deck of cards
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

// faceValues maps each rank to the value used for ordering.
var faceValues = []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

// Value returns the face value of the rank (Jack is 11, Ace is 14).
func (r Rank) Value() int {
	if !r.valid() {
		return 0
	}
	return faceValues[r]
}

func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Magic returns the special effect carried by the rank, if any.
func (r Rank) Magic() MagicKind {
	return magicRanks[r]
}

// CompareRanks orders ranks by face value.
// It returns -1 if a < b, 0 if they are equal and 1 if a > b.
func CompareRanks(a, b Rank) int {
	switch va, vb := a.Value(), b.Value(); {
	case va < vb:
		return -1
	case va > vb:
		return 1
	}
	return 0
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

var suitNames = []string{"Spade", "Heart", "Club", "Diamond"}

func (s Suit) String() string {
	if s < Spade || s > Diamond {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Red reports whether the suit is drawn in red.
func (s Suit) Red() bool {
	return s == Heart || s == Diamond
}

// MagicKind is the special effect a rank has on the pile.
type MagicKind int

const (
	NoMagic MagicKind = iota
	Reset
	Reverse
	Mirror
	Burn
)

var magicNames = []string{"", "reset", "reverse", "mirror", "burn"}

func (m MagicKind) String() string {
	if m < NoMagic || m > Burn {
		return ""
	}
	return magicNames[m]
}

var magicRanks = map[Rank]MagicKind{
	Two:   Reset,
	Seven: Reverse,
	Eight: Mirror,
	Ten:   Burn,
}
