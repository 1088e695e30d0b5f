package engine

import "github.com/minaorangina/shithead/game"

// SpyGame never ends and fails every step with stepErr
type SpyGame struct {
	stepErr error
	steps   int
}

func (g *SpyGame) Step() (game.TurnResult, error) {
	g.steps++
	return game.TurnResult{}, g.stepErr
}

func (g *SpyGame) Over() bool { return false }

func (g *SpyGame) CurrentPlayer() int { return 0 }

func (g *SpyGame) Players() []*game.Player { return []*game.Player{game.NewPlayer("spy")} }

func (g *SpyGame) FinishedPlayers() []int { return nil }

func (g *SpyGame) Loser() (int, bool) { return 0, false }

func (g *SpyGame) DeckSize() int { return 0 }

func (g *SpyGame) Pile() *game.Pile { return game.NewPile() }
