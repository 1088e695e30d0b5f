package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdText(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "Burn", Burn.String())
		assert.Equal(t, "Cmd(99)", Cmd(99).String())
	})

	t.Run("events encode commands by name", func(t *testing.T) {
		data, err := json.Marshal(Event{Command: PickUp, Turn: 3, Player: Player{PlayerID: "id", Name: "Harry"}})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"command":"PickUp"`)

		var got Event
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, PickUp, got.Command)
		assert.Equal(t, "Harry", got.Player.Name)
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		var c Cmd
		assert.Error(t, c.UnmarshalText([]byte("Reorg")))
		_, err := Cmd(-1).MarshalText()
		assert.Error(t, err)
	})
}
