package protocol

import (
	"fmt"
	"strings"
)

// Cmd represents the kind of an event
type Cmd int

const (
	Null Cmd = iota
	TurnStart
	Play
	PickUp
	Burn
	Replenish
	PlayerFinished
	GameOver
)

var cmdNames = []string{
	"Null",
	"TurnStart",
	"Play",
	"PickUp",
	"Burn",
	"Replenish",
	"PlayerFinished",
	"GameOver",
}

func (c Cmd) String() string {
	if c < Null || int(c) >= len(cmdNames) {
		return fmt.Sprintf("Cmd(%d)", int(c))
	}
	return cmdNames[c]
}

// MarshalText encodes the command by name
func (c Cmd) MarshalText() ([]byte, error) {
	if c < Null || int(c) >= len(cmdNames) {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(cmdNames[c]), nil
}

// UnmarshalText decodes a command name
func (c *Cmd) UnmarshalText(text []byte) error {
	for i, name := range cmdNames {
		if strings.EqualFold(name, string(text)) {
			*c = Cmd(i)
			return nil
		}
	}
	return fmt.Errorf("unknown command %q", string(text))
}

// Player identifies a player in an event
type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// Event is something that happened at the table, for a driver to show
type Event struct {
	Command  Cmd    `json:"command"`
	Turn     int    `json:"turn"`
	Round    int    `json:"round"`
	Player   Player `json:"player"`
	Card     string `json:"card,omitempty"`
	Count    int    `json:"count,omitempty"`
	Source   string `json:"source,omitempty"`
	Pile     int    `json:"pile"`
	Deck     int    `json:"deck"`
	Message  string `json:"message,omitempty"`
	Position int    `json:"position,omitempty"`
}
