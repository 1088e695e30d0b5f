package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/minaorangina/shithead/deck"
	"github.com/sirupsen/logrus"
)

var (
	ErrNilGame          = errors.New("game is nil")
	ErrTooFewPlayers    = errors.New("minimum of 2 players required")
	ErrNoPlayers        = errors.New("game has no players")
	ErrEmptyPlayerName  = errors.New("player name must not be empty")
	ErrNotEnoughCards   = errors.New("not enough cards to deal")
	ErrDuplicateCard    = errors.New("card appears more than once")
	ErrPlayerIndex      = errors.New("no player at index")
	ErrPlayerFinished   = errors.New("player has already finished")
	ErrGameOver         = errors.New("game is already over")
	ErrInvalidGameState = errors.New("invalid game state")
)

// Game is a table of Shithead: a deck, a pile and the players in fixed
// turn order. It is not safe for concurrent use.
type Game struct {
	deck       deck.Deck
	pile       *Pile
	players    []*Player
	finished   []int
	done       []bool
	current    int
	burnt      int
	totalCards int
	log        logrus.FieldLogger
}

// GameOpts configures a new game
type GameOpts struct {
	PlayerNames    []string
	DeckMultiplier int
	// Rand drives the shuffle. Nil means a clock-seeded source.
	Rand *rand.Rand
	// Deck, if set, is dealt from as is, without shuffling.
	Deck deck.Deck
	// Strategies by player name. Players without one play greedily.
	Strategies map[string]Strategy
	Logger     logrus.FieldLogger
}

// ExistingOpts describes a position to restore
type ExistingOpts struct {
	Deck     deck.Deck
	Pile     []deck.Card
	Players  []*Player
	Finished []int
	Current  int
	Burnt    int
	Logger   logrus.FieldLogger
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewGame builds a shuffled deck of deckMultiplier sets and deals to the
// named players
func NewGame(playerNames []string, deckMultiplier int) (*Game, error) {
	return New(GameOpts{PlayerNames: playerNames, DeckMultiplier: deckMultiplier})
}

// New constructs and deals a new game
func New(opts GameOpts) (*Game, error) {
	if len(opts.PlayerNames) < minPlayers {
		return nil, ErrTooFewPlayers
	}

	d := opts.Deck
	if d == nil {
		multiplier := opts.DeckMultiplier
		if multiplier == 0 {
			multiplier = 1
		}
		var err error
		d, err = deck.New(multiplier)
		if err != nil {
			return nil, err
		}
		r := opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		d.Shuffle(r)
	} else {
		// never deal from the caller's slice
		d = append(deck.Deck{}, d...)
	}

	needed := len(opts.PlayerNames) * numCardsInGroup * 3
	if d.Size() < needed {
		return nil, fmt.Errorf("%w: %d players need %d cards, deck has %d",
			ErrNotEnoughCards, len(opts.PlayerNames), needed, d.Size())
	}

	players := make([]*Player, 0, len(opts.PlayerNames))
	for _, name := range opts.PlayerNames {
		if name == "" {
			return nil, ErrEmptyPlayerName
		}
		p := NewPlayer(name)
		if s, ok := opts.Strategies[name]; ok && s != nil {
			p.Strategy = s
		}
		players = append(players, p)
	}

	// initial card deal
	for _, p := range players {
		p.FaceDown = NewHand(d.Deal(numCardsInGroup)...)
		p.FaceUp = NewHand(d.Deal(numCardsInGroup)...)
		p.Hand = NewHand(d.Deal(numCardsInGroup)...)
	}

	g := &Game{
		deck:    d,
		pile:    NewPile(),
		players: players,
		done:    make([]bool, len(players)),
		log:     opts.Logger,
	}
	g.totalCards = countCards(g.deck, g.pile, g.players)
	if g.log == nil {
		g.log = discardLogger()
	}

	g.log.WithField("players", len(players)).
		WithField("deck", g.deck.Size()).
		Debug("dealt new game")

	return g, nil
}

// ExistingGame restores a game from explicit state
func ExistingGame(opts ExistingOpts) (*Game, error) {
	if len(opts.Players) == 0 {
		return nil, ErrNoPlayers
	}

	g := &Game{
		deck:     append(deck.Deck{}, opts.Deck...),
		pile:     NewPile(opts.Pile...),
		players:  opts.Players,
		finished: []int{},
		done:     make([]bool, len(opts.Players)),
		burnt:    opts.Burnt,
		log:      opts.Logger,
	}
	if g.log == nil {
		g.log = discardLogger()
	}

	all := append(append([]deck.Card{}, g.deck...), g.pile.Cards()...)
	for _, p := range g.players {
		if p.Strategy == nil {
			p.Strategy = Greedy{}
		}
		all = append(all, p.allCards()...)
	}
	if !cardsUnique(all) {
		return nil, ErrDuplicateCard
	}

	for _, idx := range opts.Finished {
		if idx < 0 || idx >= len(g.players) {
			return nil, fmt.Errorf("%w: finished player %d", ErrPlayerIndex, idx)
		}
		if !g.done[idx] {
			g.done[idx] = true
			g.finished = append(g.finished, idx)
		}
	}

	if opts.Current < 0 || opts.Current >= len(g.players) {
		return nil, fmt.Errorf("%w: current player %d", ErrPlayerIndex, opts.Current)
	}
	g.current = opts.Current
	if g.done[g.current] {
		g.advance()
	}

	g.totalCards = len(all) + g.burnt
	return g, nil
}

// DeckSize is the number of cards left to draw
func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// Pile returns the current pile; it is replaced whenever it burns
func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) Players() []*Player {
	return g.players
}

// Player returns the player at position idx in turn order
func (g *Game) Player(idx int) (*Player, error) {
	if idx < 0 || idx >= len(g.players) {
		return nil, fmt.Errorf("%w %d", ErrPlayerIndex, idx)
	}
	return g.players[idx], nil
}

// BurntCount is the number of cards burnt out of play so far
func (g *Game) BurntCount() int {
	return g.burnt
}

// TotalCards is the number of cards the game started with
func (g *Game) TotalCards() int {
	return g.totalCards
}

// CardsInPlay counts the deck, the pile and every player's zones.
// It always equals TotalCards minus BurntCount.
func (g *Game) CardsInPlay() int {
	return countCards(g.deck, g.pile, g.players)
}

// CurrentPlayer is the index of the player whose turn is next
func (g *Game) CurrentPlayer() int {
	return g.current
}

// ActivePlayers returns the indices of players still in the rotation
func (g *Game) ActivePlayers() []int {
	active := []int{}
	for i := range g.players {
		if !g.done[i] {
			active = append(active, i)
		}
	}
	return active
}

// FinishedPlayers returns player indices in the order they went out
func (g *Game) FinishedPlayers() []int {
	return append([]int{}, g.finished...)
}

// Finished reports whether the player at idx has gone out
func (g *Game) Finished(idx int) bool {
	return idx >= 0 && idx < len(g.done) && g.done[idx]
}

// Over reports whether at most one player is left holding cards
func (g *Game) Over() bool {
	return len(g.ActivePlayers()) <= 1
}

// Loser returns the last player left once the game is over
func (g *Game) Loser() (int, bool) {
	active := g.ActivePlayers()
	if !g.Over() || len(active) != 1 {
		return 0, false
	}
	return active[0], true
}

// Step plays the current player's turn and passes play to the next player
// still in the game
func (g *Game) Step() (TurnResult, error) {
	if g == nil {
		return TurnResult{}, ErrNilGame
	}
	res, err := g.PlayTurn(g.current)
	if err != nil {
		return res, err
	}
	g.advance()
	return res, nil
}

// advance moves current to the next player who has not finished
func (g *Game) advance() {
	for i := 1; i <= len(g.players); i++ {
		next := (g.current + i) % len(g.players)
		if !g.done[next] {
			g.current = next
			return
		}
	}
}

func (g *Game) finish(idx int) {
	g.done[idx] = true
	g.finished = append(g.finished, idx)
}
